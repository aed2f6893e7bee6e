package response

import (
	"assessment_frc/internal/domain/entities"
	"time"
)

type LineItemResponse struct {
	ID               string `json:"id"`
	Origin           string `json:"origin"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	UnitPrice        string `json:"unit_price"`
	Quantity         string `json:"quantity"`
	Hours            string `json:"hours"`
	LineTotal        string `json:"line_total"`
	RemovedInSource  bool   `json:"removed_in_source"`
	ParentLineItemID string `json:"parent_line_item_id,omitempty"`
	Position         int    `json:"position"`
}

type LineItemSnapshotResponse struct {
	AssessmentID string             `json:"assessment_id"`
	SnapshotID   string             `json:"snapshot_id"`
	CapturedAt   time.Time          `json:"captured_at"`
	Items        []LineItemResponse `json:"items"`
}

func FromLineItemSnapshot(s entities.LineItemSnapshot) LineItemSnapshotResponse {
	items := make([]LineItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, LineItemResponse{
			ID:               it.ID,
			Origin:           string(it.Origin),
			Category:         string(it.Category),
			Description:      it.Description,
			UnitPrice:        money(it.UnitPrice),
			Quantity:         it.Quantity.String(),
			Hours:            it.Hours.String(),
			LineTotal:        money(it.LineTotal),
			RemovedInSource:  it.RemovedInSource,
			ParentLineItemID: it.ParentLineItemID,
			Position:         it.Position,
		})
	}
	return LineItemSnapshotResponse{
		AssessmentID: s.AssessmentID,
		SnapshotID:   s.SnapshotID,
		CapturedAt:   s.CapturedAt,
		Items:        items,
	}
}
