package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemOrigin tells where a line entered the assessment.
type LineItemOrigin string

const (
	LineItemOriginOriginal   LineItemOrigin = "original"
	LineItemOriginAdditional LineItemOrigin = "additional"
)

func (o LineItemOrigin) Valid() bool {
	return o == LineItemOriginOriginal || o == LineItemOriginAdditional
}

// LineItemCategory drives how the line total is computed.
type LineItemCategory string

const (
	LineItemCategoryPart   LineItemCategory = "part"
	LineItemCategoryLabour LineItemCategory = "labour"
	LineItemCategoryPaint  LineItemCategory = "paint"
	LineItemCategoryOther  LineItemCategory = "other"
)

func (c LineItemCategory) Valid() bool {
	switch c {
	case LineItemCategoryPart, LineItemCategoryLabour, LineItemCategoryPaint, LineItemCategoryOther:
		return true
	}
	return false
}

// MoneyPlaces is the number of decimal places every stored amount is rounded to.
const MoneyPlaces = 2

// LineItem is one billable item of an assessment, frozen at the moment the
// Estimate or the Additionals workflow was finalized.
//
// A later upstream change produces a new LineItemSnapshot; items are never
// mutated in place.
type LineItem struct {
	ID               string           `json:"id"`
	AssessmentID     string           `json:"assessment_id"`
	Origin           LineItemOrigin   `json:"origin"`
	Category         LineItemCategory `json:"category"`
	Description      string           `json:"description"`
	UnitPrice        decimal.Decimal  `json:"unit_price"`
	Quantity         decimal.Decimal  `json:"quantity"`
	Hours            decimal.Decimal  `json:"hours"`
	LineTotal        decimal.Decimal  `json:"line_total"`
	RemovedInSource  bool             `json:"removed_in_source"`
	ParentLineItemID string           `json:"parent_line_item_id,omitempty"`
	Position         int              `json:"position"`
}

// ComputeLineTotal applies the per-category pricing rule:
//   - part, other: unit price x quantity (a zero quantity counts as one)
//   - labour, paint: hourly rate (unit price) x hours
func ComputeLineTotal(category LineItemCategory, unitPrice, quantity, hours decimal.Decimal) decimal.Decimal {
	var total decimal.Decimal
	switch category {
	case LineItemCategoryLabour, LineItemCategoryPaint:
		total = unitPrice.Mul(hours)
	default:
		if quantity.IsZero() {
			quantity = decimal.NewFromInt(1)
		}
		total = unitPrice.Mul(quantity)
	}
	return total.Round(MoneyPlaces)
}

// WithComputedTotal returns a copy of the item with LineTotal derived from its
// price components.
func (l LineItem) WithComputedTotal() LineItem {
	l.LineTotal = ComputeLineTotal(l.Category, l.UnitPrice, l.Quantity, l.Hours)
	return l
}

// BaselineAmount is the amount the line carries before any FRC decision.
func (l LineItem) BaselineAmount() decimal.Decimal {
	return l.LineTotal.Round(MoneyPlaces)
}

// LineItemSnapshot is the full set of line items of an assessment at one
// instant.
//
// Storage model (DynamoDB):
//   - PK: assessment_id
//   - items are stored inline as a list, so a snapshot is replaced atomically
type LineItemSnapshot struct {
	AssessmentID string     `json:"assessment_id"`
	SnapshotID   string     `json:"snapshot_id"`
	CapturedAt   time.Time  `json:"captured_at"`
	Items        []LineItem `json:"items"`
}

// IDs returns the line item ids in snapshot order.
func (s LineItemSnapshot) IDs() []string {
	ids := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		ids = append(ids, it.ID)
	}
	return ids
}

// Find returns the item with the given id.
func (s LineItemSnapshot) Find(id string) (LineItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return LineItem{}, false
}
