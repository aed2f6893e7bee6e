package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Active reports whether a payment in this status settles its FRC.
func (s PaymentStatus) Active() bool {
	return s == PaymentStatusApproved || s == PaymentStatusPending
}

// SettlementPayment pays the repairer the final New Total of a completed FRC.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assessment_id-index): assessment_id
//
// ProviderPayloadRaw keeps the provider response body as received for audit;
// ProviderPayload is the parsed form, useful when debugging.
type SettlementPayment struct {
	ID           string          `json:"id"`
	AssessmentID string          `json:"assessment_id"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Status       PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
