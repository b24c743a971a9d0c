package services

import (
	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
)

// PricingCalculator is a domain service that derives line totals.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// LineTotal returns round2(quantity * unitPrice).
// Both factors are taken at their shortest decimal form and multiplied exactly,
// so 3 * 10.005 is 30.015 and rounds half away from zero to 30.02.
func (pc *PricingCalculator) LineTotal(quantity, unitPrice float64) domain.Money {
	q := domain.NewMoneyFromFloat(quantity)
	p := domain.NewMoneyFromFloat(unitPrice)
	return q.Multiply(p).Round2()
}

// DraftTotal is LineTotal over a draft's inputs.
func (pc *PricingCalculator) DraftTotal(d domain.Draft) domain.Money {
	return pc.LineTotal(d.Quantity, d.UnitPrice)
}

// HasDrifted reports whether a record's stored total no longer matches its
// current quantity and unit price. Stored totals are still what gets shown.
func (pc *PricingCalculator) HasDrifted(r domain.Record) bool {
	expected := pc.LineTotal(float64(r.Quantity), r.UnitPrice)
	return !expected.Equals(r.TotalPrice.Money())
}
