package reconciliation

import (
	"testing"

	"assessment_frc/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestMatchConfidence(t *testing.T) {
	tol := DefaultMatchTolerance()
	cases := []struct {
		name      string
		invoiced  string
		effective string
		want      entities.MatchConfidence
	}{
		{name: "equal", invoiced: "1000", effective: "1000", want: entities.MatchConfidenceExact},
		{name: "one cent off", invoiced: "999.99", effective: "1000", want: entities.MatchConfidenceExact},
		{name: "within ten percent", invoiced: "920", effective: "1000", want: entities.MatchConfidencePartial},
		{name: "over invoiced within ten percent", invoiced: "1100", effective: "1000", want: entities.MatchConfidencePartial},
		{name: "far off", invoiced: "500", effective: "1000", want: entities.MatchConfidenceNone},
		{name: "invoice on zero effective", invoiced: "20", effective: "0", want: entities.MatchConfidenceNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchConfidence(decimal.RequireFromString(tc.invoiced), decimal.RequireFromString(tc.effective), tol)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestMatchTolerance_Validate(t *testing.T) {
	if err := DefaultMatchTolerance().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := MatchTolerance{Exact: decimal.RequireFromString("-1")}
	if err := bad.Validate(); err != ErrInvalidTolerance {
		t.Fatalf("expected ErrInvalidTolerance, got %v", err)
	}
}
