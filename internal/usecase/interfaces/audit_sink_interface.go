package interfaces

import (
	"context"

	"assessment_frc/internal/domain/entities"
)

// IAuditSink receives audit events. Delivery is best-effort: callers log and
// count failures but never undo the change that produced the event.
type IAuditSink interface {
	Publish(ctx context.Context, e entities.AuditEvent) error
}
