package handler

import (
	"time"

	"creditrisk/internal/decision"
	"creditrisk/internal/limit"
	dErrors "creditrisk/pkg/domain-errors"
)

// AnalyzeResponse is the HTTP response for a model-based decision.
type AnalyzeResponse struct {
	Verdict            string    `json:"verdict"`
	CreditScore        int       `json:"credit_score"`
	DefaultProbability float64   `json:"default_probability"`
	Ceiling            float64   `json:"ceiling"`
	AgeOverrideApplied bool      `json:"age_override_applied"`
	EvaluatedAt        time.Time `json:"evaluated_at"`
}

// PolicyViolationResponse is returned with 422 when the gate declines.
type PolicyViolationResponse struct {
	Error              string  `json:"error"`
	ErrorDescription   string  `json:"error_description"`
	Verdict            string  `json:"verdict"`
	Ceiling            float64 `json:"ceiling"`
	RequestedAmount    float64 `json:"requested_amount"`
	AgeOverrideApplied bool    `json:"age_override_applied"`
}

// LimitResponse is the HTTP response for GET /decision/limit.
type LimitResponse struct {
	Ceiling            float64 `json:"ceiling"`
	AgeOverrideApplied bool    `json:"age_override_applied"`
}

// FromResult converts a domain Result to an HTTP response.
func FromResult(result *decision.Result) *AnalyzeResponse {
	return &AnalyzeResponse{
		Verdict:            string(result.Verdict),
		CreditScore:        result.CreditScore,
		DefaultProbability: result.DefaultProbability,
		Ceiling:            result.Ceiling,
		AgeOverrideApplied: result.AgeOverrideApplied,
		EvaluatedAt:        result.EvaluatedAt,
	}
}

// FromPolicyViolation builds the auto-decline body. result may be nil.
func FromPolicyViolation(v *decision.PolicyViolationError, result *decision.Result) *PolicyViolationResponse {
	resp := &PolicyViolationResponse{
		Error:            string(dErrors.CodePolicyViolation),
		ErrorDescription: dErrors.MessageOf(v),
		Verdict:          string(decision.VerdictAutoDeclined),
		Ceiling:          v.Ceiling,
		RequestedAmount:  v.RequestedAmount,
	}
	if result != nil {
		resp.AgeOverrideApplied = result.AgeOverrideApplied
	}
	return resp
}

// FromLimit converts a limit result to an HTTP response.
func FromLimit(result limit.Result) *LimitResponse {
	return &LimitResponse{
		Ceiling:            result.Ceiling,
		AgeOverrideApplied: result.AgeOverrideApplied,
	}
}
