package interfaces

import (
	"context"

	"assessment_frc/internal/domain/entities"
)

// ISettlementPaymentRepository abstracts persistence for SettlementPayment.

type ISettlementPaymentRepository interface {
	Create(ctx context.Context, p entities.SettlementPayment) (entities.SettlementPayment, error)
	ListByAssessmentID(ctx context.Context, assessmentID string) ([]entities.SettlementPayment, error)
}
