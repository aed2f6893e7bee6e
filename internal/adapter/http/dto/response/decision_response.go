package response

import (
	"assessment_frc/internal/domain/entities"
	"time"
)

type DecisionResponse struct {
	AssessmentID  string     `json:"assessment_id"`
	LineItemID    string     `json:"line_item_id"`
	Status        string     `json:"status"`
	AdjustedValue *string    `json:"adjusted_value,omitempty"`
	DecidedBy     string     `json:"decided_by,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	Stale         bool       `json:"stale"`
	Version       int64      `json:"version"`
}

func FromDecision(d entities.Decision) DecisionResponse {
	res := DecisionResponse{
		AssessmentID:  d.AssessmentID,
		LineItemID:    d.LineItemID,
		Status:        string(d.Status),
		AdjustedValue: moneyPtr(d.AdjustedValue),
		DecidedBy:     d.DecidedBy,
		Stale:         d.Stale,
		Version:       d.Version,
	}
	if !d.DecidedAt.IsZero() {
		t := d.DecidedAt
		res.DecidedAt = &t
	}
	return res
}

func FromDecisions(ds []entities.Decision) []DecisionResponse {
	out := make([]DecisionResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDecision(d))
	}
	return out
}
