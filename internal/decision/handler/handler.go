package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"creditrisk/internal/decision"
	"creditrisk/internal/limit"
	dErrors "creditrisk/pkg/domain-errors"
	"creditrisk/pkg/platform/httputil"
	"creditrisk/pkg/requestcontext"
)

// Service defines the interface for decision operations.
type Service interface {
	Analyze(ctx context.Context, applicant decision.Applicant) (*decision.Result, error)
	PreviewLimit(jobLevel decision.JobLevel, age int) (limit.Result, error)
}

// Handler wires decision endpoints to the decision service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a decision handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts decision endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/decision/analyze", h.HandleAnalyze)
	r.Get("/decision/limit", h.HandlePreviewLimit)
}

// HandleAnalyze handles POST /decision/analyze requests.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[AnalyzeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Analyze(ctx, req.Applicant())

	var violation *decision.PolicyViolationError
	if errors.As(err, &violation) {
		h.logger.InfoContext(ctx, "credit request auto-declined",
			"request_id", requestID,
			"job_level", req.JobLevel,
			"ceiling", violation.Ceiling,
		)
		httputil.WriteJSON(w, http.StatusUnprocessableEntity, FromPolicyViolation(violation, result))
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "credit analysis failed",
			"request_id", requestID,
			"code", string(dErrors.CodeOf(err)),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "credit analysis completed",
		"request_id", requestID,
		"verdict", string(result.Verdict),
		"credit_score", result.CreditScore,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandlePreviewLimit handles GET /decision/limit?job_level=&age= requests.
func (h *Handler) HandlePreviewLimit(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	jobLevel, err := strconv.Atoi(query.Get("job_level"))
	if err != nil || !decision.JobLevel(jobLevel).IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "job_level must be an integer between 0 and 3"))
		return
	}
	age, err := strconv.Atoi(query.Get("age"))
	if err != nil || age < decision.MinAge || age > decision.MaxAge {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "age must be an integer between 18 and 100"))
		return
	}

	result, err := h.service.PreviewLimit(decision.JobLevel(jobLevel), age)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromLimit(result))
}
