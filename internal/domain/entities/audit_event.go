package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AuditEventDecisionRecorded = "frc.decision.recorded"
	AuditEventFRCCompleted     = "frc.completed"
)

// AuditEvent is handed to the audit sink. The sink is write-only and
// best-effort: a failed publish never undoes the change it describes.
type AuditEvent struct {
	ID            string           `json:"id"`
	Type          string           `json:"type"`
	AssessmentID  string           `json:"assessment_id"`
	LineItemID    string           `json:"line_item_id,omitempty"`
	OldStatus     string           `json:"old_status,omitempty"`
	NewStatus     string           `json:"new_status,omitempty"`
	AdjustedValue *decimal.Decimal `json:"adjusted_value,omitempty"`
	Actor         string           `json:"actor"`
	OccurredAt    time.Time        `json:"occurred_at"`
}
