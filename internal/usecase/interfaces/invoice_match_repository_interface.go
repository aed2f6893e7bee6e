package interfaces

import (
	"context"

	"assessment_frc/internal/domain/entities"
)

// IInvoiceMatchRepository stores invoice document to line links, keyed by
// (assessment_id, invoice_document_id). Saving an existing document moves it.

type IInvoiceMatchRepository interface {
	Save(ctx context.Context, match entities.InvoiceMatch) (entities.InvoiceMatch, error)
	ListByAssessment(ctx context.Context, assessmentID string) ([]entities.InvoiceMatch, error)
	ListByLineItem(ctx context.Context, assessmentID, lineItemID string) ([]entities.InvoiceMatch, error)
}
