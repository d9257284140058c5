package decision

import (
	"fmt"

	dErrors "creditrisk/pkg/domain-errors"
)

// PolicyViolationError is returned when the requested amount exceeds the
// ceiling. It carries the violated ceiling so callers can suggest a lower
// amount. It unwraps to a policy_violation domain error.
type PolicyViolationError struct {
	Ceiling         float64
	RequestedAmount float64
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("requested amount %.2f exceeds credit ceiling %.2f", e.RequestedAmount, e.Ceiling)
}

func (e *PolicyViolationError) Unwrap() error {
	return dErrors.New(dErrors.CodePolicyViolation,
		fmt.Sprintf("requested amount exceeds the maximum of %.0f for this profile", e.Ceiling))
}

func modelUnavailable(cause error) error {
	if cause == nil {
		return dErrors.New(dErrors.CodeModelUnavailable, "risk model is not loaded")
	}
	if dErrors.HasCode(cause, dErrors.CodeModelUnavailable) {
		return cause
	}
	return dErrors.Wrap(cause, dErrors.CodeModelUnavailable, "risk model is not loaded")
}
