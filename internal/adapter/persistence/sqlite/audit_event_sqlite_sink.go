package sqlite

import (
	"context"
	"database/sql"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"
)

// AuditEventSink appends audit events to the audit_events table.
type AuditEventSink struct {
	db *sql.DB
}

var _ interfaces.IAuditSink = (*AuditEventSink)(nil)

func NewAuditEventSink(db *sql.DB) *AuditEventSink {
	return &AuditEventSink{db: db}
}

func (s *AuditEventSink) Publish(ctx context.Context, e entities.AuditEvent) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO audit_events(id, type, assessment_id, line_item_id, old_status, new_status, adjusted_value, actor, occurred_at)
VALUES (?,?,?,?,?,?,?,?,?)`,
		e.ID, e.Type, e.AssessmentID, e.LineItemID, e.OldStatus, e.NewStatus, nullDecimal(e.AdjustedValue), e.Actor, formatTime(e.OccurredAt))
	return err
}

// ListByAssessment returns the audit trail of an assessment in the order the
// events occurred.
func (s *AuditEventSink) ListByAssessment(ctx context.Context, assessmentID string) ([]entities.AuditEvent, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, type, assessment_id, line_item_id, old_status, new_status, adjusted_value, actor, occurred_at
FROM audit_events WHERE assessment_id=? ORDER BY occurred_at ASC, id ASC`, assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.AuditEvent
	for rows.Next() {
		var e entities.AuditEvent
		var adjusted sql.NullString
		var occurredAt string
		if err := rows.Scan(&e.ID, &e.Type, &e.AssessmentID, &e.LineItemID, &e.OldStatus, &e.NewStatus, &adjusted, &e.Actor, &occurredAt); err != nil {
			return nil, err
		}
		e.AdjustedValue = decimalPtr(adjusted)
		e.OccurredAt = parseTime(occurredAt)
		out = append(out, e)
	}
	return out, rows.Err()
}
