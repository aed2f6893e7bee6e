package reconciliation

import (
	"errors"

	"assessment_frc/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidTolerance = errors.New("invalid match tolerance")

// MatchTolerance configures invoice match grading.
//
// Exact is an absolute amount. PartialRatio is a fraction of the effective
// amount (0.10 means "within 10%"); the partial band is never narrower than
// the exact one.
type MatchTolerance struct {
	Exact        decimal.Decimal
	PartialRatio decimal.Decimal
}

// DefaultMatchTolerance is one cent exact, ten percent partial.
func DefaultMatchTolerance() MatchTolerance {
	return MatchTolerance{
		Exact:        decimal.RequireFromString("0.01"),
		PartialRatio: decimal.RequireFromString("0.10"),
	}
}

func (t MatchTolerance) Validate() error {
	if t.Exact.IsNegative() || t.PartialRatio.IsNegative() {
		return ErrInvalidTolerance
	}
	return nil
}

// MatchConfidence compares an invoiced amount with the effective FRC amount.
func MatchConfidence(invoiced, effective decimal.Decimal, tol MatchTolerance) entities.MatchConfidence {
	diff := invoiced.Sub(effective).Abs()
	if diff.LessThanOrEqual(tol.Exact) {
		return entities.MatchConfidenceExact
	}
	partial := effective.Abs().Mul(tol.PartialRatio)
	if partial.LessThan(tol.Exact) {
		partial = tol.Exact
	}
	if diff.LessThanOrEqual(partial) {
		return entities.MatchConfidencePartial
	}
	return entities.MatchConfidenceNone
}
