package reconciliation

import (
	"encoding/json"
	"errors"
	"testing"

	"assessment_frc/internal/domain/entities"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var d = decimal.RequireFromString

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func partLine(id string, origin entities.LineItemOrigin, total string, position int) entities.LineItem {
	return entities.LineItem{
		ID:           id,
		AssessmentID: "a-1",
		Origin:       origin,
		Category:     entities.LineItemCategoryPart,
		Description:  "line " + id,
		UnitPrice:    d(total),
		Quantity:     d("1"),
		LineTotal:    d(total),
		Position:     position,
	}
}

func decision(lineID string, status entities.DecisionStatus, value *decimal.Decimal) entities.Decision {
	return entities.Decision{AssessmentID: "a-1", LineItemID: lineID, Status: status, AdjustedValue: value, Version: 1}
}

func run(t *testing.T, items []entities.LineItem, decisions []entities.Decision) entities.FRCResult {
	t.Helper()
	res, err := Reconcile(Input{
		AssessmentID: "a-1",
		SnapshotID:   "s-1",
		Items:        items,
		Decisions:    decisions,
		Tolerance:    DefaultMatchTolerance(),
	})
	require.NoError(t, err)
	return res
}

func assertTotals(t *testing.T, res entities.FRCResult, baseline, newTotal, delta string) {
	t.Helper()
	assert.True(t, res.Totals.BaselineTotal.Equal(d(baseline)), "baseline %s", res.Totals.BaselineTotal)
	assert.True(t, res.Totals.NewTotal.Equal(d(newTotal)), "new total %s", res.Totals.NewTotal)
	assert.True(t, res.Totals.Delta.Equal(d(delta)), "delta %s", res.Totals.Delta)
}

func TestReconcile_Scenarios(t *testing.T) {
	original := partLine("line-1", entities.LineItemOriginOriginal, "1000", 1)

	t.Run("single pending original", func(t *testing.T) {
		res := run(t, []entities.LineItem{original}, []entities.Decision{
			decision("line-1", entities.DecisionStatusPending, nil),
		})
		assertTotals(t, res, "1000", "0", "-1000")
		assert.Equal(t, 1, res.Totals.PendingCount())
		assert.Equal(t, entities.DisplayStatusPending, res.Lines[0].DisplayStatus)
		assert.True(t, res.Lines[0].Editable)
	})

	t.Run("approved original", func(t *testing.T) {
		res := run(t, []entities.LineItem{original}, []entities.Decision{
			decision("line-1", entities.DecisionStatusApproved, nil),
		})
		assertTotals(t, res, "1000", "1000", "0")
	})

	t.Run("approved additional", func(t *testing.T) {
		extra := partLine("line-2", entities.LineItemOriginAdditional, "200", 2)
		res := run(t, []entities.LineItem{original, extra}, []entities.Decision{
			decision("line-1", entities.DecisionStatusApproved, nil),
			decision("line-2", entities.DecisionStatusApproved, nil),
		})
		assertTotals(t, res, "1000", "1200", "200")
	})

	t.Run("removed in source", func(t *testing.T) {
		removed := original
		removed.RemovedInSource = true
		res := run(t, []entities.LineItem{removed}, []entities.Decision{
			decision("line-1", entities.DecisionStatusApproved, nil),
		})
		line := res.Lines[0]
		assert.Equal(t, entities.DisplayStatusRemovedDeduction, line.DisplayStatus)
		assert.True(t, line.EffectiveAmount.Equal(d("-1000")))
		assert.False(t, line.Editable)
		assertTotals(t, res, "0", "-1000", "-1000")
	})

	t.Run("declined is locked", func(t *testing.T) {
		res := run(t, []entities.LineItem{original}, []entities.Decision{
			decision("line-1", entities.DecisionStatusDeclined, nil),
		})
		line := res.Lines[0]
		assert.Equal(t, entities.DisplayStatusDeclined, line.DisplayStatus)
		assert.True(t, line.EffectiveAmount.IsZero())
		assert.False(t, line.Editable)
		assertTotals(t, res, "1000", "0", "-1000")
	})

	t.Run("adjusted contributes its value", func(t *testing.T) {
		res := run(t, []entities.LineItem{original}, []entities.Decision{
			decision("line-1", entities.DecisionStatusAdjusted, dp("750.5")),
		})
		assert.Equal(t, entities.DisplayStatusAdjusted, res.Lines[0].DisplayStatus)
		assertTotals(t, res, "1000", "750.5", "-249.5")
	})
}

func TestReconcile_FrozenLocksEverything(t *testing.T) {
	res, err := Reconcile(Input{
		AssessmentID: "a-1",
		Items: []entities.LineItem{
			partLine("l-1", entities.LineItemOriginOriginal, "10", 1),
			partLine("l-2", entities.LineItemOriginOriginal, "20", 2),
		},
		Decisions: []entities.Decision{
			decision("l-1", entities.DecisionStatusApproved, nil),
			decision("l-2", entities.DecisionStatusAdjusted, dp("5")),
		},
		Frozen:    true,
		Tolerance: DefaultMatchTolerance(),
	})
	require.NoError(t, err)
	for _, l := range res.Lines {
		assert.False(t, l.Editable, l.LineItemID)
	}
}

func TestReconcile_IgnoresDecisionsForAbsentLines(t *testing.T) {
	res := run(t, []entities.LineItem{partLine("l-1", entities.LineItemOriginOriginal, "10", 1)}, []entities.Decision{
		decision("l-1", entities.DecisionStatusApproved, nil),
		decision("gone", entities.DecisionStatusApproved, nil),
	})
	require.Len(t, res.Lines, 1)
	assertTotals(t, res, "10", "10", "0")
}

func TestReconcile_InvariantViolations(t *testing.T) {
	ok := partLine("l-1", entities.LineItemOriginOriginal, "10", 1)
	okDecision := decision("l-1", entities.DecisionStatusPending, nil)

	child := partLine("l-2", entities.LineItemOriginAdditional, "5", 2)
	child.ParentLineItemID = "missing"
	self := partLine("l-2", entities.LineItemOriginAdditional, "5", 2)
	self.ParentLineItemID = "l-2"
	nestedParent := partLine("l-2", entities.LineItemOriginAdditional, "5", 2)
	nestedParent.ParentLineItemID = "l-1"
	nested := partLine("l-3", entities.LineItemOriginAdditional, "5", 3)
	nested.ParentLineItemID = "l-2"
	negative := ok
	negative.LineTotal = d("-1")
	badOrigin := ok
	badOrigin.Origin = "imported"

	cases := []struct {
		name      string
		items     []entities.LineItem
		decisions []entities.Decision
		invoices  []entities.InvoiceMatch
	}{
		{name: "empty id", items: []entities.LineItem{{Origin: entities.LineItemOriginOriginal, Category: entities.LineItemCategoryPart}}},
		{name: "duplicate id", items: []entities.LineItem{ok, ok}, decisions: []entities.Decision{okDecision}},
		{name: "unknown origin", items: []entities.LineItem{badOrigin}, decisions: []entities.Decision{okDecision}},
		{name: "negative amount", items: []entities.LineItem{negative}, decisions: []entities.Decision{okDecision}},
		{name: "dangling parent", items: []entities.LineItem{ok, child}},
		{name: "self parent", items: []entities.LineItem{ok, self}},
		{name: "nested replacement", items: []entities.LineItem{ok, nestedParent, nested}},
		{name: "missing ledger record", items: []entities.LineItem{ok}},
		{
			name:      "duplicate decision",
			items:     []entities.LineItem{ok},
			decisions: []entities.Decision{okDecision, okDecision},
		},
		{
			name:      "adjusted without value",
			items:     []entities.LineItem{ok},
			decisions: []entities.Decision{decision("l-1", entities.DecisionStatusAdjusted, nil)},
		},
		{
			name:      "negative invoice",
			items:     []entities.LineItem{ok},
			decisions: []entities.Decision{okDecision},
			invoices:  []entities.InvoiceMatch{{LineItemID: "l-1", InvoiceDocumentID: "inv-1", InvoiceAmount: d("-3")}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Reconcile(Input{AssessmentID: "a-1", Items: tc.items, Decisions: tc.decisions, Invoices: tc.invoices})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvariantViolation), err.Error())
			var inv *InvariantError
			assert.True(t, errors.As(err, &inv))
		})
	}
}

func TestReconcile_OrderAndGrouping(t *testing.T) {
	root := partLine("b", entities.LineItemOriginOriginal, "10", 1)
	sibling := partLine("a", entities.LineItemOriginOriginal, "10", 1)
	replacement := partLine("c", entities.LineItemOriginAdditional, "4", 0)
	replacement.ParentLineItemID = "b"

	res := run(t, []entities.LineItem{root, replacement, sibling}, []entities.Decision{
		decision("a", entities.DecisionStatusPending, nil),
		decision("b", entities.DecisionStatusPending, nil),
		decision("c", entities.DecisionStatusPending, nil),
	})

	var order []string
	for _, l := range res.Lines {
		order = append(order, l.LineItemID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, order)
	require.Len(t, res.Groups, 2)
	assert.Equal(t, "a", res.Groups[0].Root.LineItemID)
	assert.Empty(t, res.Groups[0].Replacements)
	assert.Equal(t, "b", res.Groups[1].Root.LineItemID)
	require.Len(t, res.Groups[1].Replacements, 1)
	assert.Equal(t, "c", res.Groups[1].Replacements[0].LineItemID)
}

func TestReconcile_IsDeterministicAndDoesNotMutateInput(t *testing.T) {
	items := []entities.LineItem{
		partLine("z", entities.LineItemOriginOriginal, "30", 2),
		partLine("y", entities.LineItemOriginOriginal, "20", 1),
	}
	decisions := []entities.Decision{
		decision("y", entities.DecisionStatusApproved, nil),
		decision("z", entities.DecisionStatusAdjusted, dp("12.345")),
	}
	first := run(t, items, decisions)
	second := run(t, items, decisions)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
	assert.Equal(t, "z", items[0].ID)
	assert.True(t, first.Lines[1].EffectiveAmount.Equal(d("12.35")))
}

func TestReconcile_InvoiceMatching(t *testing.T) {
	res, err := Reconcile(Input{
		AssessmentID: "a-1",
		Items:        []entities.LineItem{partLine("l-1", entities.LineItemOriginOriginal, "100", 1)},
		Decisions:    []entities.Decision{decision("l-1", entities.DecisionStatusApproved, nil)},
		Invoices: []entities.InvoiceMatch{
			{LineItemID: "l-1", InvoiceDocumentID: "inv-b", InvoiceAmount: d("60")},
			{LineItemID: "l-1", InvoiceDocumentID: "inv-a", InvoiceAmount: d("40")},
			{LineItemID: "stale", InvoiceDocumentID: "inv-c", InvoiceAmount: d("1")},
		},
		Tolerance: DefaultMatchTolerance(),
	})
	require.NoError(t, err)
	line := res.Lines[0]
	assert.Equal(t, []string{"inv-a", "inv-b"}, line.InvoiceDocumentIDs)
	assert.True(t, line.InvoiceTotal.Equal(d("100")))
	assert.Equal(t, entities.MatchConfidenceExact, line.MatchConfidence)
}

func TestReconcile_Golden(t *testing.T) {
	removed := entities.LineItem{
		ID: "l-2", AssessmentID: "a-1", Origin: entities.LineItemOriginOriginal, Category: entities.LineItemCategoryLabour,
		Description: "Bumper refit", UnitPrice: d("250"), Hours: d("2"), LineTotal: d("500"), RemovedInSource: true, Position: 2,
	}
	replacement := entities.LineItem{
		ID: "l-3", AssessmentID: "a-1", Origin: entities.LineItemOriginAdditional, Category: entities.LineItemCategoryPart,
		Description: "Bumper bracket", UnitPrice: d("200"), Quantity: d("1"), LineTotal: d("200"), ParentLineItemID: "l-2", Position: 3,
	}
	original := entities.LineItem{
		ID: "l-1", AssessmentID: "a-1", Origin: entities.LineItemOriginOriginal, Category: entities.LineItemCategoryPart,
		Description: "Front bumper", UnitPrice: d("1000"), Quantity: d("1"), LineTotal: d("1000"), Position: 1,
	}

	res, err := Reconcile(Input{
		AssessmentID: "a-1",
		SnapshotID:   "s-1",
		Items:        []entities.LineItem{replacement, original, removed},
		Decisions: []entities.Decision{
			{AssessmentID: "a-1", LineItemID: "l-1", Status: entities.DecisionStatusApproved, Version: 2},
			{AssessmentID: "a-1", LineItemID: "l-2", Status: entities.DecisionStatusApproved, DecidedBy: entities.SystemActorRemovedInSource, Version: 1},
			{AssessmentID: "a-1", LineItemID: "l-3", Status: entities.DecisionStatusAdjusted, AdjustedValue: dp("180"), Version: 3},
		},
		Invoices: []entities.InvoiceMatch{
			{AssessmentID: "a-1", LineItemID: "l-1", InvoiceDocumentID: "inv-9", InvoiceAmount: d("1000")},
			{AssessmentID: "a-1", LineItemID: "l-3", InvoiceDocumentID: "inv-7", InvoiceAmount: d("175")},
		},
		Tolerance: DefaultMatchTolerance(),
	})
	require.NoError(t, err)

	out, err := json.MarshalIndent(res, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "mixed_assessment", out)
}
