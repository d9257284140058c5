package handler

import (
	"strings"

	"creditrisk/internal/decision"
	dErrors "creditrisk/pkg/domain-errors"
)

// AnalyzeRequest is the HTTP request body for POST /decision/analyze.
type AnalyzeRequest struct {
	Age             int     `json:"age"`
	Sex             string  `json:"sex"`
	JobLevel        int     `json:"job_level"`
	RequestedAmount float64 `json:"requested_amount"`
	DurationMonths  int     `json:"duration_months"`
}

// Validate normalises and validates the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *AnalyzeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.Sex) > 32 {
		return dErrors.New(dErrors.CodeValidation, "sex must be at most 32 characters")
	}

	r.Sex = strings.ToLower(strings.TrimSpace(r.Sex))
	return r.Applicant().Validate()
}

// Applicant converts the request to the domain input.
func (r *AnalyzeRequest) Applicant() decision.Applicant {
	return decision.Applicant{
		Age:             r.Age,
		Sex:             decision.Sex(r.Sex),
		JobLevel:        decision.JobLevel(r.JobLevel),
		RequestedAmount: r.RequestedAmount,
		DurationMonths:  r.DurationMonths,
	}
}
