package decision

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"creditrisk/internal/decision/metrics"
	"creditrisk/internal/decision/ports"
	"creditrisk/internal/limit"
	dErrors "creditrisk/pkg/domain-errors"
	"creditrisk/pkg/requestcontext"
)

// Type aliases for the consumed model interfaces.
type (
	Classifier       = ports.Classifier
	Encoder          = ports.Encoder
	ArtifactProvider = ports.ArtifactProvider
)

const tracerName = "creditrisk/internal/decision"

// Service combines the limit policy gate with the risk classifier to produce
// a credit decision. It holds no mutable state; the artifacts it reads are
// immutable once loaded.
type Service struct {
	artifacts       ArtifactProvider
	policy          limit.Policy
	scale           ScoreScale
	evaluateTimeout time.Duration
	logger          *slog.Logger
	metrics         *metrics.Metrics
	tracer          trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithPolicy replaces the default ceiling table.
func WithPolicy(policy limit.Policy) Option {
	return func(s *Service) {
		s.policy = policy
	}
}

// WithScoreScale replaces the default 300-850 score mapping.
func WithScoreScale(scale ScoreScale) Option {
	return func(s *Service) {
		s.scale = scale
	}
}

// WithEvaluateTimeout bounds a single Analyze call. Zero disables the bound.
func WithEvaluateTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.evaluateTimeout = d
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New builds the decision service. A nil artifact provider is accepted: every
// analysis that reaches the model then fails with model_unavailable, while
// limit previews and the policy gate keep working.
func New(artifacts ArtifactProvider, opts ...Option) (*Service, error) {
	svc := &Service{
		artifacts: artifacts,
		policy:    limit.DefaultPolicy(),
		scale:     DefaultScoreScale(),
		tracer:    otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(svc)
	}

	if err := svc.policy.Validate(); err != nil {
		return nil, err
	}
	if err := svc.scale.Validate(); err != nil {
		return nil, err
	}

	return svc, nil
}

// PreviewLimit computes the live ceiling for a job level and age.
func (s *Service) PreviewLimit(jobLevel JobLevel, age int) (limit.Result, error) {
	result, err := s.policy.Compute(int(jobLevel), age)
	if err != nil {
		return limit.Result{}, err
	}
	s.metrics.IncrementLimitPreviews()
	return result, nil
}

// Analyze computes the applicant's ceiling and evaluates the request against it.
func (s *Service) Analyze(ctx context.Context, applicant Applicant) (*Result, error) {
	if s.evaluateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.evaluateTimeout)
		defer cancel()
	}

	lim, err := s.policy.Compute(int(applicant.JobLevel), applicant.Age)
	if err != nil {
		s.metrics.IncrementError(string(dErrors.CodeOf(err)))
		return nil, err
	}
	return s.Evaluate(ctx, applicant, lim)
}

// Evaluate runs the policy gate and, if the request is within the ceiling,
// the risk model.
//
// When the amount exceeds the ceiling it returns a result with
// VerdictAutoDeclined together with a *PolicyViolationError; the classifier
// and encoder are not touched. Missing artifacts fail with model_unavailable
// and an out-of-vocabulary category with unknown_category.
func (s *Service) Evaluate(ctx context.Context, applicant Applicant, lim limit.Result) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "decision.Evaluate")
	defer span.End()
	start := time.Now()
	defer func() {
		s.metrics.ObserveEvaluateLatency(time.Since(start))
	}()

	// Over the ceiling: decline without consulting the model.
	if applicant.RequestedAmount > lim.Ceiling {
		result := &Result{
			Verdict:            VerdictAutoDeclined,
			Ceiling:            lim.Ceiling,
			AgeOverrideApplied: lim.AgeOverrideApplied,
			EvaluatedAt:        requestcontext.Now(ctx),
		}
		span.SetAttributes(attribute.String("decision.verdict", string(result.Verdict)))
		s.metrics.IncrementOutcome(string(result.Verdict))
		logAudit(ctx, s.logger, EventPolicyDeclined,
			"job_level", applicant.JobLevel.String(),
			"age_override_applied", lim.AgeOverrideApplied,
			"ceiling", lim.Ceiling,
			"requested_amount", applicant.RequestedAmount,
		)
		return result, &PolicyViolationError{Ceiling: lim.Ceiling, RequestedAmount: applicant.RequestedAmount}
	}

	classifier, encoder, err := s.loadArtifacts(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}

	sexCode, err := encoder.Encode(string(applicant.Sex))
	if err != nil {
		var coded *dErrors.Error
		if !errors.As(err, &coded) {
			err = dErrors.Wrap(err, dErrors.CodeInternal, "category encoding failed")
		}
		return nil, s.fail(ctx, span, err)
	}
	features := AssembleFeatures(applicant, sexCode).Slice()

	// A superseded or timed-out request is dropped before inference.
	if err := ctx.Err(); err != nil {
		return nil, s.fail(ctx, span, dErrors.Wrap(err, dErrors.CodeTimeout, "evaluation cancelled"))
	}

	// Both calls see the same vector.
	prediction, err := classifier.PredictClass(features)
	if err != nil {
		return nil, s.fail(ctx, span, dErrors.Wrap(err, dErrors.CodeInternal, "risk classification failed"))
	}
	probability, err := classifier.PredictProbability(features)
	if err != nil {
		return nil, s.fail(ctx, span, dErrors.Wrap(err, dErrors.CodeInternal, "risk probability failed"))
	}
	if err := checkInference(prediction, probability); err != nil {
		return nil, s.fail(ctx, span, err)
	}

	result := &Result{
		Verdict:            VerdictFor(prediction),
		CreditScore:        s.scale.Score(probability),
		DefaultProbability: probability,
		Ceiling:            lim.Ceiling,
		AgeOverrideApplied: lim.AgeOverrideApplied,
		EvaluatedAt:        requestcontext.Now(ctx),
	}

	span.SetAttributes(
		attribute.String("decision.verdict", string(result.Verdict)),
		attribute.Int("decision.credit_score", result.CreditScore),
		attribute.Float64("decision.default_probability", result.DefaultProbability),
	)
	s.metrics.IncrementOutcome(string(result.Verdict))
	s.metrics.ObserveCreditScore(result.CreditScore)
	logAudit(ctx, s.logger, EventDecisionMade,
		"verdict", string(result.Verdict),
		"credit_score", result.CreditScore,
		"default_probability", result.DefaultProbability,
		"ceiling", result.Ceiling,
	)

	return result, nil
}

func (s *Service) loadArtifacts(ctx context.Context) (Classifier, Encoder, error) {
	if s.artifacts == nil {
		return nil, nil, modelUnavailable(nil)
	}
	classifier, encoder, err := s.artifacts.Artifacts(ctx)
	if err != nil {
		return nil, nil, modelUnavailable(err)
	}
	if classifier == nil || encoder == nil {
		return nil, nil, modelUnavailable(nil)
	}
	return classifier, encoder, nil
}

func (s *Service) fail(ctx context.Context, span trace.Span, err error) error {
	code := dErrors.CodeOf(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, string(code))
	s.metrics.IncrementError(string(code))

	if code == dErrors.CodeModelUnavailable {
		logAudit(ctx, s.logger, EventModelUnavailable, "error", err)
	} else if s.logger != nil && !errors.Is(err, context.Canceled) {
		s.logger.WarnContext(ctx, "credit decision failed",
			"request_id", requestcontext.RequestID(ctx),
			"code", string(code),
			"error", err,
		)
	}
	return err
}
