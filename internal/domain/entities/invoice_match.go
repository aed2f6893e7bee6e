package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchConfidence grades how well the invoiced amount of a line agrees with
// its effective FRC amount.
type MatchConfidence string

const (
	MatchConfidenceExact   MatchConfidence = "exact"
	MatchConfidencePartial MatchConfidence = "partial"
	MatchConfidenceNone    MatchConfidence = "none"
)

// InvoiceMatch links one uploaded invoice document to one FRC line.
// Several documents may point at the same line.
//
// Storage model (DynamoDB):
//   - PK: assessment_id
//   - SK: invoice_document_id
type InvoiceMatch struct {
	AssessmentID      string          `json:"assessment_id"`
	LineItemID        string          `json:"line_item_id"`
	InvoiceDocumentID string          `json:"invoice_document_id"`
	InvoiceAmount     decimal.Decimal `json:"invoice_amount"`
	MatchConfidence   MatchConfidence `json:"match_confidence"`
	AttachedBy        string          `json:"attached_by"`
	AttachedAt        time.Time       `json:"attached_at"`
}

// LineMatch is the match confidence report of one FRC line.
type LineMatch struct {
	LineItemID      string          `json:"line_item_id"`
	EffectiveAmount decimal.Decimal `json:"effective_amount"`
	InvoiceTotal    decimal.Decimal `json:"invoice_total"`
	InvoiceCount    int             `json:"invoice_count"`
	MatchConfidence MatchConfidence `json:"match_confidence"`
}
