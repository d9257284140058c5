package decision

import (
	"fmt"
	"math"

	dErrors "creditrisk/pkg/domain-errors"
)

// ScoreScale maps default probability onto a credit score:
// score = round(Max - probability*Span).
type ScoreScale struct {
	Max  float64
	Span float64
}

// DefaultScoreScale is the conventional 300-850 range.
func DefaultScoreScale() ScoreScale {
	return ScoreScale{Max: 850, Span: 550}
}

// Score converts a default probability to a credit score. Lower probability
// yields a higher score. No clamping beyond what the formula gives.
func (s ScoreScale) Score(probability float64) int {
	return int(math.Round(s.Max - probability*s.Span))
}

func (s ScoreScale) Validate() error {
	if s.Span <= 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "score span must be positive")
	}
	if s.Max-s.Span < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "score floor must not be negative")
	}
	return nil
}

// AssembleFeatures builds the classifier input. This is pure domain logic.
func AssembleFeatures(a Applicant, sexCode int) FeatureVector {
	return FeatureVector{
		Age:             float64(a.Age),
		RequestedAmount: a.RequestedAmount,
		DurationMonths:  float64(a.DurationMonths),
		SexCode:         float64(sexCode),
		JobLevel:        float64(a.JobLevel),
	}
}

// VerdictFor maps a class prediction to a verdict: 1 is bad risk.
func VerdictFor(prediction int) Verdict {
	if prediction == 1 {
		return VerdictDeclined
	}
	return VerdictApproved
}

// checkInference rejects classifier output outside its contract.
func checkInference(prediction int, probability float64) error {
	if prediction != 0 && prediction != 1 {
		return dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("classifier returned class %d", prediction))
	}
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("classifier returned probability %v", probability))
	}
	return nil
}
