package model

import (
	"encoding/json"
	"fmt"
	"slices"

	dErrors "creditrisk/pkg/domain-errors"
	"creditrisk/pkg/platform/sentinel"
	pstrings "creditrisk/pkg/platform/strings"
)

// LabelEncoder maps a category to its index in a sorted vocabulary, the way
// the training pipeline's label encoder does (female=0, male=1).
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

type encoderDocument struct {
	Classes []string `json:"classes"`
}

// DecodeLabelEncoder parses an encoder artifact. The class list must already
// be the fitted vocabulary: sorted, unique, trimmed and non-blank. A reordered
// list would silently change every code.
func DecodeLabelEncoder(raw []byte) (*LabelEncoder, error) {
	var doc encoderDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: encoder: %v", sentinel.ErrCorrupt, err)
	}
	if len(doc.Classes) == 0 {
		return nil, fmt.Errorf("%w: encoder has no classes", sentinel.ErrCorrupt)
	}
	if !slices.Equal(pstrings.SortedUnique(doc.Classes), doc.Classes) {
		return nil, fmt.Errorf("%w: encoder classes must be sorted, unique and non-blank", sentinel.ErrCorrupt)
	}

	index := make(map[string]int, len(doc.Classes))
	for i, c := range doc.Classes {
		index[c] = i
	}
	return &LabelEncoder{classes: doc.Classes, index: index}, nil
}

// Encode returns the code for category. Matching is exact.
func (e *LabelEncoder) Encode(category string) (int, error) {
	code, ok := e.index[category]
	if !ok {
		return 0, dErrors.New(dErrors.CodeUnknownCategory, fmt.Sprintf("unknown category %q", category))
	}
	return code, nil
}

// Classes returns the trained vocabulary in code order.
func (e *LabelEncoder) Classes() []string {
	return slices.Clone(e.classes)
}
