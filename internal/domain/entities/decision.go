package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidDecision is returned for a malformed decision payload.
var ErrInvalidDecision = errors.New("invalid decision")

// DecisionStatus is the human judgement recorded against a line item.
type DecisionStatus string

const (
	DecisionStatusPending  DecisionStatus = "pending"
	DecisionStatusApproved DecisionStatus = "approved"
	DecisionStatusDeclined DecisionStatus = "declined"
	DecisionStatusAdjusted DecisionStatus = "adjusted"
)

func (s DecisionStatus) Valid() bool {
	switch s {
	case DecisionStatusPending, DecisionStatusApproved, DecisionStatusDeclined, DecisionStatusAdjusted:
		return true
	}
	return false
}

// SystemActorRemovedInSource is the actor recorded when a line removed
// upstream is auto-approved at seeding time.
const SystemActorRemovedInSource = "system:removed-in-source"

// Decision is the ledger record for one line item of an assessment.
//
// Storage model (DynamoDB):
//   - PK: assessment_id
//   - SK: line_item_id
//   - version is the compare-and-swap token of every update
type Decision struct {
	AssessmentID  string           `json:"assessment_id"`
	LineItemID    string           `json:"line_item_id"`
	Status        DecisionStatus   `json:"status"`
	AdjustedValue *decimal.Decimal `json:"adjusted_value,omitempty"`
	DecidedBy     string           `json:"decided_by,omitempty"`
	DecidedAt     time.Time        `json:"decided_at"`
	Stale         bool             `json:"stale"`
	Version       int64            `json:"version"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ValidateDecisionPayload enforces that an adjusted value is present if and
// only if the status is adjusted, and that it is not negative.
func ValidateDecisionPayload(status DecisionStatus, adjustedValue *decimal.Decimal) error {
	if !status.Valid() {
		return ErrInvalidDecision
	}
	if status == DecisionStatusAdjusted {
		if adjustedValue == nil || adjustedValue.IsNegative() {
			return ErrInvalidDecision
		}
		return nil
	}
	if adjustedValue != nil {
		return ErrInvalidDecision
	}
	return nil
}

// Validate checks the record against ValidateDecisionPayload.
func (d Decision) Validate() error {
	return ValidateDecisionPayload(d.Status, d.AdjustedValue)
}
