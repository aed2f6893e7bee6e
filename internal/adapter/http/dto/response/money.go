package response

import (
	"assessment_frc/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// money renders an amount with exactly two decimal places.
func money(d decimal.Decimal) string {
	return d.StringFixed(entities.MoneyPlaces)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}
