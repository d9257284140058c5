package decision

import (
	"context"
	"log/slog"

	"creditrisk/pkg/attrs"
	"creditrisk/pkg/requestcontext"
)

// Audit events written by the service.
const (
	EventDecisionMade     = "credit_decision_made"
	EventPolicyDeclined   = "credit_policy_auto_declined"
	EventModelUnavailable = "credit_model_unavailable"
)

// logAudit writes an audit line to the structured logger, enriched with the
// request ID. Decisions are logged, never stored.
func logAudit(ctx context.Context, logger *slog.Logger, event string, attrList ...any) {
	if logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" && !attrs.Has(attrList, "request_id") {
		attrList = append(attrList, "request_id", requestID)
	}
	args := append(attrList, "event", event, "log_type", "audit")
	logger.InfoContext(ctx, event, args...)
}
