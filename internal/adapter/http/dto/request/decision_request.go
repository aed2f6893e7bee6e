package request

import (
	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase"
	"strings"

	"github.com/shopspring/decimal"
)

// RecordDecisionRequest is the body of the decision route. ExpectedVersion is
// the decision_version the client rendered; when present a stale write is
// refused with 409.
type RecordDecisionRequest struct {
	Status          string           `json:"status" binding:"required"`
	AdjustedValue   *decimal.Decimal `json:"adjusted_value"`
	ExpectedVersion *int64           `json:"expected_version"`
}

func (r RecordDecisionRequest) ToInput(assessmentID, lineItemID, actor string) usecase.RecordDecisionInput {
	return usecase.RecordDecisionInput{
		AssessmentID:    assessmentID,
		LineItemID:      lineItemID,
		Status:          entities.DecisionStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		AdjustedValue:   r.AdjustedValue,
		Actor:           actor,
		ExpectedVersion: r.ExpectedVersion,
	}
}
