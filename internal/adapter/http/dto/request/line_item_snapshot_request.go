package request

import (
	"assessment_frc/internal/domain/entities"
	"strings"

	"github.com/shopspring/decimal"
)

type LineItemRequest struct {
	ID               string          `json:"id" binding:"required"`
	Origin           string          `json:"origin" binding:"required,oneof=original additional"`
	Category         string          `json:"category" binding:"required,oneof=part labour paint other"`
	Description      string          `json:"description"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Quantity         decimal.Decimal `json:"quantity"`
	Hours            decimal.Decimal `json:"hours"`
	RemovedInSource  bool            `json:"removed_in_source"`
	ParentLineItemID string          `json:"parent_line_item_id"`
	Position         int             `json:"position"`
}

// PublishSnapshotRequest is pushed by the Estimate and Additionals services
// whenever an assessment's line items are finalized. It always carries the
// full set of items; line totals are derived server side.
type PublishSnapshotRequest struct {
	Items []LineItemRequest `json:"items" binding:"required,dive"`
}

func (r PublishSnapshotRequest) ToLineItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LineItem{
			ID:               strings.TrimSpace(it.ID),
			Origin:           entities.LineItemOrigin(it.Origin),
			Category:         entities.LineItemCategory(it.Category),
			Description:      it.Description,
			UnitPrice:        it.UnitPrice,
			Quantity:         it.Quantity,
			Hours:            it.Hours,
			RemovedInSource:  it.RemovedInSource,
			ParentLineItemID: strings.TrimSpace(it.ParentLineItemID),
			Position:         it.Position,
		})
	}
	return items
}
