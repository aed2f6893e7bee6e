package mock_interfaces

import (
	"context"
	"testing"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

var (
	_ interfaces.IAuditSink                   = (*MockIAuditSink)(nil)
	_ interfaces.IDecisionRepository          = (*MockIDecisionRepository)(nil)
	_ interfaces.IFRCRecordRepository         = (*MockIFRCRecordRepository)(nil)
	_ interfaces.IInvoiceMatchRepository      = (*MockIInvoiceMatchRepository)(nil)
	_ interfaces.ILineItemRepository          = (*MockILineItemRepository)(nil)
	_ interfaces.IFRCMetrics                  = (*MockIFRCMetrics)(nil)
	_ interfaces.IPaymentGateway              = (*MockIPaymentGateway)(nil)
	_ interfaces.ISettlementPaymentRepository = (*MockISettlementPaymentRepository)(nil)
)

func TestMockIInvoiceMatchRepository_SavePassesMatchThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockIInvoiceMatchRepository(ctrl)
	in := entities.InvoiceMatch{AssessmentID: "a-1", LineItemID: "l-1", InvoiceDocumentID: "inv-1"}

	repo.EXPECT().Save(gomock.Any(), in).Return(in, nil)

	got, err := repo.Save(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.InvoiceDocumentID != "inv-1" {
		t.Fatalf("unexpected match: %+v", got)
	}
}
