package decision

import (
	"fmt"
	"time"

	dErrors "creditrisk/pkg/domain-errors"
)

// Sex is the applicant's sex as entered by the operator. It is passed to the
// encoder untouched; the engine does not know the vocabulary.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// JobLevel is the applicant's job skill tier.
type JobLevel int

const (
	JobUnskilledNonResident JobLevel = 0
	JobUnskilledResident    JobLevel = 1
	JobSkilled              JobLevel = 2
	JobHighlyQualified      JobLevel = 3
)

func (j JobLevel) IsValid() bool {
	return j >= JobUnskilledNonResident && j <= JobHighlyQualified
}

func (j JobLevel) String() string {
	switch j {
	case JobUnskilledNonResident:
		return "unskilled_non_resident"
	case JobUnskilledResident:
		return "unskilled_resident"
	case JobSkilled:
		return "skilled"
	case JobHighlyQualified:
		return "highly_qualified"
	default:
		return fmt.Sprintf("job_level_%d", int(j))
	}
}

// Applicant domain bounds.
const (
	MinAge            = 18
	MaxAge            = 100
	MinDurationMonths = 6
	MaxDurationMonths = 72
)

// Applicant is the per-request input. It is owned by the caller and never
// mutated by the engine.
type Applicant struct {
	Age             int
	Sex             Sex
	JobLevel        JobLevel
	RequestedAmount float64
	DurationMonths  int
}

// Validate checks every field is present and inside its domain. The engine
// itself trusts its input; transports call this before Analyze.
func (a Applicant) Validate() error {
	if a.Age < MinAge || a.Age > MaxAge {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("age must be between %d and %d", MinAge, MaxAge))
	}
	if a.Sex == "" {
		return dErrors.New(dErrors.CodeValidation, "sex is required")
	}
	if !a.JobLevel.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "job_level must be between 0 and 3")
	}
	if a.RequestedAmount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "requested_amount must be positive")
	}
	if a.DurationMonths < MinDurationMonths || a.DurationMonths > MaxDurationMonths {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("duration_months must be between %d and %d", MinDurationMonths, MaxDurationMonths))
	}
	return nil
}

// Verdict is the final decision.
type Verdict string

const (
	VerdictApproved     Verdict = "approved"
	VerdictDeclined     Verdict = "declined"
	VerdictAutoDeclined Verdict = "auto_declined"
)

// FeatureCount is the number of classifier inputs.
const FeatureCount = 5

// FeatureVector is the classifier input. Field order is the training column
// order: age, credit amount, duration, sex, job.
type FeatureVector struct {
	Age             float64
	RequestedAmount float64
	DurationMonths  float64
	SexCode         float64
	JobLevel        float64
}

// Slice returns the features in training column order.
func (f FeatureVector) Slice() []float64 {
	return []float64{f.Age, f.RequestedAmount, f.DurationMonths, f.SexCode, f.JobLevel}
}

// Result is created once per analysis and not mutated afterwards. For
// VerdictAutoDeclined the model was not consulted, so CreditScore and
// DefaultProbability are zero.
type Result struct {
	Verdict            Verdict
	CreditScore        int
	DefaultProbability float64
	Ceiling            float64
	AgeOverrideApplied bool
	EvaluatedAt        time.Time
}

// ModelConsulted reports whether the verdict came from the risk classifier.
func (r *Result) ModelConsulted() bool {
	return r.Verdict != VerdictAutoDeclined
}
