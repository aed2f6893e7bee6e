// Package reconciliation merges immutable line item facts with the mutable
// decision ledger into the FRC line view and its totals.
//
// Everything here is pure: no I/O, no clock, no hidden state. Calling Reconcile
// twice with the same Input yields identical results.
package reconciliation

import (
	"sort"

	"assessment_frc/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Input is one consistent read of the line item store and the ledger.
type Input struct {
	AssessmentID string
	SnapshotID   string
	Items        []entities.LineItem
	Decisions    []entities.Decision
	Invoices     []entities.InvoiceMatch
	// Frozen renders every line read-only (completed FRC).
	Frozen    bool
	Tolerance MatchTolerance
}

// Reconcile classifies every line item, groups replacement lines under their
// parent and aggregates the totals. Decisions whose line is absent from the
// snapshot are stale and ignored. Any invariant violation aborts the run.
func Reconcile(in Input) (entities.FRCResult, error) {
	items, err := orderedItems(in.AssessmentID, in.Items)
	if err != nil {
		return entities.FRCResult{}, err
	}
	decisions, err := indexDecisions(in.AssessmentID, in.Decisions, items)
	if err != nil {
		return entities.FRCResult{}, err
	}
	invoices, err := indexInvoices(in.Invoices, items)
	if err != nil {
		return entities.FRCResult{}, err
	}

	lines := make([]entities.FRCLineView, 0, len(items))
	for _, it := range items {
		d, ok := decisions[it.ID]
		if !ok {
			return entities.FRCResult{}, violation(it.ID, "no ledger record; the ledger must be seeded before classification")
		}
		view, err := Classify(it, d, in.Frozen)
		if err != nil {
			return entities.FRCResult{}, err
		}
		attachInvoices(&view, invoices[it.ID], in.Tolerance)
		lines = append(lines, view)
	}

	return entities.FRCResult{
		AssessmentID: in.AssessmentID,
		SnapshotID:   in.SnapshotID,
		Frozen:       in.Frozen,
		Lines:        lines,
		Groups:       Group(lines),
		Totals:       Aggregate(items, lines),
	}, nil
}

// Classify derives the display status and effective amount of one line.
//
// A line removed upstream is always a locked deduction, whatever its decision
// says; the decision stays in the ledger but does not count.
func Classify(item entities.LineItem, d entities.Decision, frozen bool) (entities.FRCLineView, error) {
	if err := d.Validate(); err != nil {
		return entities.FRCLineView{}, violation(item.ID, "malformed decision %q", d.Status)
	}
	baseline := item.BaselineAmount()
	view := entities.FRCLineView{
		LineItemID:         item.ID,
		Origin:             item.Origin,
		Category:           item.Category,
		Description:        item.Description,
		ParentLineItemID:   item.ParentLineItemID,
		DecisionStatus:     d.Status,
		DecisionVersion:    d.Version,
		BaselineAmount:     baseline,
		InvoiceDocumentIDs: []string{},
		InvoiceTotal:       decimal.Zero,
		MatchConfidence:    entities.MatchConfidenceNone,
	}

	if item.RemovedInSource {
		view.DisplayStatus = entities.DisplayStatusRemovedDeduction
		view.EffectiveAmount = baseline.Neg()
		view.Editable = false
		return view, nil
	}

	switch d.Status {
	case entities.DecisionStatusPending:
		view.DisplayStatus = entities.DisplayStatusPending
		view.EffectiveAmount = decimal.Zero
		view.Editable = true
	case entities.DecisionStatusApproved:
		view.DisplayStatus = entities.DisplayStatusApproved
		view.EffectiveAmount = baseline
		view.Editable = true
	case entities.DecisionStatusDeclined:
		view.DisplayStatus = entities.DisplayStatusDeclined
		view.EffectiveAmount = decimal.Zero
		view.Editable = false
	case entities.DecisionStatusAdjusted:
		view.DisplayStatus = entities.DisplayStatusAdjusted
		view.EffectiveAmount = d.AdjustedValue.Round(entities.MoneyPlaces)
		view.Editable = true
	}
	if frozen {
		view.Editable = false
	}
	return view, nil
}

// Group nests replacement lines beneath the line they replace. Lines keep the
// order they have in the input.
func Group(lines []entities.FRCLineView) []entities.FRCLineGroup {
	groups := make([]entities.FRCLineGroup, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, l := range lines {
		if l.ParentLineItemID != "" {
			continue
		}
		index[l.LineItemID] = len(groups)
		groups = append(groups, entities.FRCLineGroup{Root: l, Replacements: []entities.FRCLineView{}})
	}
	for _, l := range lines {
		if l.ParentLineItemID == "" {
			continue
		}
		if i, ok := index[l.ParentLineItemID]; ok {
			groups[i].Replacements = append(groups[i].Replacements, l)
		}
	}
	return groups
}

// Aggregate computes baseline, new total and delta. items and lines must be
// aligned by index.
func Aggregate(items []entities.LineItem, lines []entities.FRCLineView) entities.FRCAggregate {
	agg := entities.FRCAggregate{
		BaselineTotal: decimal.Zero,
		NewTotal:      decimal.Zero,
		LineCounts: map[entities.DisplayStatus]int{
			entities.DisplayStatusPending:          0,
			entities.DisplayStatusApproved:         0,
			entities.DisplayStatusDeclined:         0,
			entities.DisplayStatusAdjusted:         0,
			entities.DisplayStatusRemovedDeduction: 0,
		},
	}
	for i, it := range items {
		if it.Origin == entities.LineItemOriginOriginal && !it.RemovedInSource {
			agg.BaselineTotal = agg.BaselineTotal.Add(lines[i].BaselineAmount)
		}
	}
	for _, l := range lines {
		agg.LineCounts[l.DisplayStatus]++
		if l.DisplayStatus.ContributesToNewTotal() {
			agg.NewTotal = agg.NewTotal.Add(l.EffectiveAmount)
		}
	}
	agg.Delta = agg.NewTotal.Sub(agg.BaselineTotal)
	return agg
}

// ValidateItems applies the line item invariants Reconcile enforces, without
// needing decisions. Ingestion uses it to refuse bad snapshots early.
func ValidateItems(assessmentID string, items []entities.LineItem) error {
	_, err := orderedItems(assessmentID, items)
	return err
}

func orderedItems(assessmentID string, in []entities.LineItem) ([]entities.LineItem, error) {
	items := make([]entities.LineItem, len(in))
	copy(items, in)
	byID := make(map[string]entities.LineItem, len(items))
	for _, it := range items {
		if it.ID == "" {
			return nil, violation("", "line item without id")
		}
		if _, dup := byID[it.ID]; dup {
			return nil, violation(it.ID, "duplicate line item id")
		}
		if it.AssessmentID != "" && assessmentID != "" && it.AssessmentID != assessmentID {
			return nil, violation(it.ID, "line item belongs to assessment %q", it.AssessmentID)
		}
		if !it.Origin.Valid() {
			return nil, violation(it.ID, "unknown origin %q", it.Origin)
		}
		if !it.Category.Valid() {
			return nil, violation(it.ID, "unknown category %q", it.Category)
		}
		if it.UnitPrice.IsNegative() || it.Quantity.IsNegative() || it.Hours.IsNegative() || it.LineTotal.IsNegative() {
			return nil, violation(it.ID, "negative amount")
		}
		byID[it.ID] = it
	}
	for _, it := range items {
		if it.ParentLineItemID == "" {
			continue
		}
		parent, ok := byID[it.ParentLineItemID]
		switch {
		case it.ParentLineItemID == it.ID:
			return nil, violation(it.ID, "line is its own parent")
		case !ok:
			return nil, violation(it.ID, "parent %q not in snapshot", it.ParentLineItemID)
		case parent.ParentLineItemID != "":
			return nil, violation(it.ID, "parent %q is itself a replacement line", parent.ID)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func indexDecisions(assessmentID string, in []entities.Decision, items []entities.LineItem) (map[string]entities.Decision, error) {
	present := make(map[string]struct{}, len(items))
	for _, it := range items {
		present[it.ID] = struct{}{}
	}
	out := make(map[string]entities.Decision, len(in))
	for _, d := range in {
		if _, ok := present[d.LineItemID]; !ok {
			continue
		}
		if d.AssessmentID != "" && assessmentID != "" && d.AssessmentID != assessmentID {
			return nil, violation(d.LineItemID, "decision belongs to assessment %q", d.AssessmentID)
		}
		if _, dup := out[d.LineItemID]; dup {
			return nil, violation(d.LineItemID, "more than one decision")
		}
		out[d.LineItemID] = d
	}
	return out, nil
}

func indexInvoices(in []entities.InvoiceMatch, items []entities.LineItem) (map[string][]entities.InvoiceMatch, error) {
	present := make(map[string]struct{}, len(items))
	for _, it := range items {
		present[it.ID] = struct{}{}
	}
	out := make(map[string][]entities.InvoiceMatch)
	for _, m := range in {
		if _, ok := present[m.LineItemID]; !ok {
			continue
		}
		if m.InvoiceAmount.IsNegative() {
			return nil, violation(m.LineItemID, "invoice %q has a negative amount", m.InvoiceDocumentID)
		}
		out[m.LineItemID] = append(out[m.LineItemID], m)
	}
	return out, nil
}

func attachInvoices(view *entities.FRCLineView, matches []entities.InvoiceMatch, tol MatchTolerance) {
	if len(matches) == 0 {
		return
	}
	total := decimal.Zero
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		total = total.Add(m.InvoiceAmount)
		ids = append(ids, m.InvoiceDocumentID)
	}
	sort.Strings(ids)
	view.InvoiceDocumentIDs = ids
	view.InvoiceTotal = total
	view.MatchConfidence = MatchConfidence(total, view.EffectiveAmount, tol)
}
