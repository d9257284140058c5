package model

import (
	"encoding/json"
	"fmt"

	"creditrisk/pkg/platform/sentinel"
)

const leaf = -1

// Tree is one fitted decision tree in flat array form. Node i splits on
// Feature[i] at Threshold[i]: x <= threshold goes to ChildrenLeft[i],
// otherwise ChildrenRight[i]. A node whose children are -1 is a leaf, and
// Value[i] holds its per-class sample weights.
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// Forest is a bagged ensemble of binary decision trees. Probabilities are the
// mean of the per-tree leaf class fractions.
type Forest struct {
	NFeatures int    `json:"n_features"`
	Classes   []int  `json:"classes"`
	Trees     []Tree `json:"trees"`
}

// DecodeForest parses and validates a classifier artifact.
func DecodeForest(raw []byte) (*Forest, error) {
	var f Forest
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: classifier: %v", sentinel.ErrCorrupt, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks structural integrity so prediction can never index out of
// range or loop.
func (f *Forest) Validate() error {
	if f.NFeatures <= 0 {
		return fmt.Errorf("%w: classifier n_features must be positive", sentinel.ErrCorrupt)
	}
	if len(f.Classes) != 2 || f.Classes[0] != 0 || f.Classes[1] != 1 {
		return fmt.Errorf("%w: classifier classes must be [0, 1]", sentinel.ErrCorrupt)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("%w: classifier has no trees", sentinel.ErrCorrupt)
	}
	for i := range f.Trees {
		if err := f.Trees[i].validate(f.NFeatures); err != nil {
			return fmt.Errorf("%w: tree %d: %v", sentinel.ErrCorrupt, i, err)
		}
	}
	return nil
}

func (t *Tree) validate(nFeatures int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("node arrays differ in length")
	}
	for i := 0; i < n; i++ {
		left, right := t.ChildrenLeft[i], t.ChildrenRight[i]
		if left == leaf || right == leaf {
			if left != right {
				return fmt.Errorf("node %d has a single child", i)
			}
			if len(t.Value[i]) != 2 || t.Value[i][0] < 0 || t.Value[i][1] < 0 || t.Value[i][0]+t.Value[i][1] <= 0 {
				return fmt.Errorf("leaf %d needs two non-negative class weights", i)
			}
			continue
		}
		// Children always follow their parent, which rules out cycles.
		if left <= i || left >= n || right <= i || right >= n {
			return fmt.Errorf("node %d has out of range children", i)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= nFeatures {
			return fmt.Errorf("node %d splits on unknown feature %d", i, t.Feature[i])
		}
	}
	return nil
}

func (t *Tree) leafFor(x []float64) int {
	node := 0
	for t.ChildrenLeft[node] != leaf {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return node
}

// PredictProbability returns the ensemble probability of class 1.
func (f *Forest) PredictProbability(features []float64) (float64, error) {
	if len(features) != f.NFeatures {
		return 0, fmt.Errorf("classifier expects %d features, got %d", f.NFeatures, len(features))
	}
	var sum float64
	for i := range f.Trees {
		v := f.Trees[i].Value[f.Trees[i].leafFor(features)]
		sum += v[1] / (v[0] + v[1])
	}
	return sum / float64(len(f.Trees)), nil
}

// PredictClass returns the class with the highest mean probability; a tie
// goes to class 0.
func (f *Forest) PredictClass(features []float64) (int, error) {
	p, err := f.PredictProbability(features)
	if err != nil {
		return 0, err
	}
	if p > 0.5 {
		return f.Classes[1], nil
	}
	return f.Classes[0], nil
}
