package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisplayStatus is the status a line is shown with on the FRC. It is always
// derived from the line item and its decision, never stored.
type DisplayStatus string

const (
	DisplayStatusPending          DisplayStatus = "pending"
	DisplayStatusApproved         DisplayStatus = "approved"
	DisplayStatusDeclined         DisplayStatus = "declined"
	DisplayStatusAdjusted         DisplayStatus = "adjusted"
	DisplayStatusRemovedDeduction DisplayStatus = "removed_deduction"
)

// Locked reports whether a line in this status can never be edited.
func (s DisplayStatus) Locked() bool {
	return s == DisplayStatusDeclined || s == DisplayStatusRemovedDeduction
}

// ContributesToNewTotal reports whether effective amounts in this status are
// part of the New Total.
func (s DisplayStatus) ContributesToNewTotal() bool {
	switch s {
	case DisplayStatusApproved, DisplayStatusAdjusted, DisplayStatusRemovedDeduction:
		return true
	}
	return false
}

// FRCLineView is one reconciled line.
type FRCLineView struct {
	LineItemID         string           `json:"line_item_id"`
	Origin             LineItemOrigin   `json:"origin"`
	Category           LineItemCategory `json:"category"`
	Description        string           `json:"description"`
	ParentLineItemID   string           `json:"parent_line_item_id,omitempty"`
	DisplayStatus      DisplayStatus    `json:"display_status"`
	DecisionStatus     DecisionStatus   `json:"decision_status"`
	DecisionVersion    int64            `json:"decision_version"`
	BaselineAmount     decimal.Decimal  `json:"baseline_amount"`
	EffectiveAmount    decimal.Decimal  `json:"effective_amount"`
	Editable           bool             `json:"editable"`
	InvoiceDocumentIDs []string         `json:"invoice_document_ids"`
	InvoiceTotal       decimal.Decimal  `json:"invoice_total"`
	MatchConfidence    MatchConfidence  `json:"match_confidence"`
}

// FRCLineGroup is a visible row: a root line with the replacement lines that
// point at it through ParentLineItemID.
type FRCLineGroup struct {
	Root         FRCLineView   `json:"root"`
	Replacements []FRCLineView `json:"replacements"`
}

// FRCAggregate holds the totals of a reconciliation run. Delta is always
// NewTotal - BaselineTotal.
type FRCAggregate struct {
	BaselineTotal decimal.Decimal       `json:"baseline_total"`
	NewTotal      decimal.Decimal       `json:"new_total"`
	Delta         decimal.Decimal       `json:"delta"`
	LineCounts    map[DisplayStatus]int `json:"line_counts"`
}

// PendingCount is the number of lines still waiting for a decision.
func (a FRCAggregate) PendingCount() int {
	return a.LineCounts[DisplayStatusPending]
}

// FRCResult is everything a reconciliation run produces.
type FRCResult struct {
	AssessmentID string         `json:"assessment_id"`
	SnapshotID   string         `json:"snapshot_id"`
	Frozen       bool           `json:"frozen"`
	Lines        []FRCLineView  `json:"lines"`
	Groups       []FRCLineGroup `json:"groups"`
	Totals       FRCAggregate   `json:"totals"`
	ComputedAt   time.Time      `json:"computed_at"`
}

// Line returns the view of the given line item.
func (r FRCResult) Line(lineItemID string) (FRCLineView, bool) {
	for _, l := range r.Lines {
		if l.LineItemID == lineItemID {
			return l, true
		}
	}
	return FRCLineView{}, false
}

// FRCStatus is the lifecycle of an assessment's FRC.
type FRCStatus string

const (
	FRCStatusOpen      FRCStatus = "open"
	FRCStatusCompleted FRCStatus = "completed"
)

// FRCRecord archives the final totals once the FRC is completed.
//
// Storage model (DynamoDB):
//   - PK: assessment_id
type FRCRecord struct {
	AssessmentID  string          `json:"assessment_id"`
	Status        FRCStatus       `json:"status"`
	SnapshotID    string          `json:"snapshot_id"`
	BaselineTotal decimal.Decimal `json:"baseline_total"`
	NewTotal      decimal.Decimal `json:"new_total"`
	Delta         decimal.Decimal `json:"delta"`
	CompletedBy   string          `json:"completed_by,omitempty"`
	CompletedAt   time.Time       `json:"completed_at"`
}

// Completed reports whether the FRC is frozen.
func (r FRCRecord) Completed() bool {
	return r.Status == FRCStatusCompleted
}
