package response

import (
	"assessment_frc/internal/domain/entities"
	"time"
)

type SettlementResponse struct {
	PaymentID    string    `json:"payment_id"`
	AssessmentID string    `json:"assessment_id"`
	Amount       string    `json:"amount"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromSettlement(p entities.SettlementPayment) SettlementResponse {
	return SettlementResponse{
		PaymentID:          p.ID,
		AssessmentID:       p.AssessmentID,
		Amount:             money(p.Amount),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromSettlements(ps []entities.SettlementPayment) []SettlementResponse {
	out := make([]SettlementResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromSettlement(p))
	}
	return out
}
