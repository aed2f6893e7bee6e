package request

import (
	"assessment_frc/internal/usecase"
	"strings"

	"github.com/shopspring/decimal"
)

type AttachInvoiceRequest struct {
	InvoiceDocumentID string          `json:"invoice_document_id" binding:"required"`
	InvoiceAmount     decimal.Decimal `json:"invoice_amount"`
}

func (r AttachInvoiceRequest) ToInput(assessmentID, lineItemID, actor string) usecase.AttachInvoiceInput {
	return usecase.AttachInvoiceInput{
		AssessmentID:      assessmentID,
		LineItemID:        lineItemID,
		InvoiceDocumentID: strings.TrimSpace(r.InvoiceDocumentID),
		InvoiceAmount:     r.InvoiceAmount,
		Actor:             actor,
	}
}
