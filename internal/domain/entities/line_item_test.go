package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeLineTotal(t *testing.T) {
	d := decimal.RequireFromString

	cases := []struct {
		name     string
		category LineItemCategory
		price    string
		qty      string
		hours    string
		want     string
	}{
		{name: "part uses quantity", category: LineItemCategoryPart, price: "450.25", qty: "2", hours: "0", want: "900.5"},
		{name: "part zero quantity counts once", category: LineItemCategoryPart, price: "1000", qty: "0", hours: "0", want: "1000"},
		{name: "labour uses hours", category: LineItemCategoryLabour, price: "380", qty: "0", hours: "1.5", want: "570"},
		{name: "paint uses hours", category: LineItemCategoryPaint, price: "420", qty: "3", hours: "2", want: "840"},
		{name: "other rounds to cents", category: LineItemCategoryOther, price: "10.005", qty: "1", hours: "0", want: "10.01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeLineTotal(tc.category, d(tc.price), d(tc.qty), d(tc.hours))
			if !got.Equal(d(tc.want)) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestLineItemSnapshot_Find(t *testing.T) {
	s := LineItemSnapshot{Items: []LineItem{{ID: "l-1"}, {ID: "l-2"}}}
	if _, ok := s.Find("l-2"); !ok {
		t.Fatalf("expected l-2")
	}
	if _, ok := s.Find("l-3"); ok {
		t.Fatalf("did not expect l-3")
	}
	ids := s.IDs()
	if len(ids) != 2 || ids[0] != "l-1" || ids[1] != "l-2" {
		t.Fatalf("unexpected ids %v", ids)
	}
}
