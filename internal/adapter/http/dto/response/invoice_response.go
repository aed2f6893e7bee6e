package response

import (
	"assessment_frc/internal/domain/entities"
	"time"
)

type InvoiceMatchResponse struct {
	AssessmentID      string    `json:"assessment_id"`
	LineItemID        string    `json:"line_item_id"`
	InvoiceDocumentID string    `json:"invoice_document_id"`
	InvoiceAmount     string    `json:"invoice_amount"`
	MatchConfidence   string    `json:"match_confidence"`
	AttachedBy        string    `json:"attached_by"`
	AttachedAt        time.Time `json:"attached_at"`
}

func FromInvoiceMatch(m entities.InvoiceMatch) InvoiceMatchResponse {
	return InvoiceMatchResponse{
		AssessmentID:      m.AssessmentID,
		LineItemID:        m.LineItemID,
		InvoiceDocumentID: m.InvoiceDocumentID,
		InvoiceAmount:     money(m.InvoiceAmount),
		MatchConfidence:   string(m.MatchConfidence),
		AttachedBy:        m.AttachedBy,
		AttachedAt:        m.AttachedAt,
	}
}

func FromInvoiceMatches(ms []entities.InvoiceMatch) []InvoiceMatchResponse {
	out := make([]InvoiceMatchResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromInvoiceMatch(m))
	}
	return out
}

type LineMatchResponse struct {
	LineItemID      string `json:"line_item_id"`
	EffectiveAmount string `json:"effective_amount"`
	InvoiceTotal    string `json:"invoice_total"`
	InvoiceCount    int    `json:"invoice_count"`
	MatchConfidence string `json:"match_confidence"`
}

func FromLineMatch(m entities.LineMatch) LineMatchResponse {
	return LineMatchResponse{
		LineItemID:      m.LineItemID,
		EffectiveAmount: money(m.EffectiveAmount),
		InvoiceTotal:    money(m.InvoiceTotal),
		InvoiceCount:    m.InvoiceCount,
		MatchConfidence: string(m.MatchConfidence),
	}
}
