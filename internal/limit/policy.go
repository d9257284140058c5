// Package limit computes the maximum credit amount a profile may request
// before the risk model is consulted.
package limit

import (
	"fmt"
	"slices"

	dErrors "creditrisk/pkg/domain-errors"
)

// Tier is one row of the ceiling table. Tiers are evaluated in order and the
// first that lists the job level supplies the base ceiling.
type Tier struct {
	Name      string
	JobLevels []int
	Ceiling   float64
}

// Matches reports whether the tier covers jobLevel.
func (t Tier) Matches(jobLevel int) bool {
	return slices.Contains(t.JobLevels, jobLevel)
}

// AgeOverride scales the base ceiling for applicants younger than BelowAge.
type AgeOverride struct {
	BelowAge int
	Factor   float64
}

// Policy is the full, ordered limit rule table.
type Policy struct {
	Tiers       []Tier
	AgeOverride AgeOverride
}

// Result is the outcome of a limit computation.
type Result struct {
	Ceiling            float64 `json:"ceiling"`
	AgeOverrideApplied bool    `json:"age_override_applied"`
}

// JobLevelTier builds a tier matching any of the given job levels.
func JobLevelTier(ceiling float64, levels ...int) Tier {
	return Tier{
		Name:      fmt.Sprintf("job_levels_%v", levels),
		JobLevels: slices.Clone(levels),
		Ceiling:   ceiling,
	}
}

// DefaultPolicy returns the production ceiling table:
//
//	job level 0-1 -> 10,000
//	job level 2   -> 50,000
//	job level 3   -> 100,000
//	age < 21      -> ceiling halved
func DefaultPolicy() Policy {
	return Policy{
		Tiers: []Tier{
			JobLevelTier(10_000, 0, 1),
			JobLevelTier(50_000, 2),
			JobLevelTier(100_000, 3),
		},
		AgeOverride: AgeOverride{BelowAge: 21, Factor: 0.5},
	}
}

// Compute returns the ceiling for a job level and age. It is pure and cheap
// enough to run on every input change.
func (p Policy) Compute(jobLevel, age int) (Result, error) {
	for _, tier := range p.Tiers {
		if !tier.Matches(jobLevel) {
			continue
		}
		result := Result{Ceiling: tier.Ceiling}
		if age < p.AgeOverride.BelowAge {
			result.Ceiling *= p.AgeOverride.Factor
			result.AgeOverrideApplied = true
		}
		return result, nil
	}
	return Result{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("no credit limit tier for job level %d", jobLevel))
}

// Validate checks the table is usable.
func (p Policy) Validate() error {
	if len(p.Tiers) == 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "limit policy needs at least one tier")
	}
	for i, tier := range p.Tiers {
		if len(tier.JobLevels) == 0 {
			return dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("limit tier %d lists no job levels", i))
		}
		if tier.Ceiling <= 0 {
			return dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("limit tier %d ceiling must be positive", i))
		}
	}
	if p.AgeOverride.BelowAge < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "age override threshold must not be negative")
	}
	if p.AgeOverride.Factor <= 0 || p.AgeOverride.Factor > 1 {
		return dErrors.New(dErrors.CodeInvariantViolation, "age override factor must be in (0, 1]")
	}
	return nil
}
