package services

import (
	"fmt"

	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
)

// Stats are the summary counters shown above the record table.
type Stats struct {
	Count         int
	TotalQuantity int
	TotalValue    domain.Money
}

// DisplayValue renders the total value with a currency prefix, e.g. "OMR 27.50".
func (s Stats) DisplayValue(currency string) string {
	return fmt.Sprintf("%s %s", currency, s.TotalValue.String())
}

// StatsAggregator computes Stats from a record list. It holds no state.
type StatsAggregator struct{}

func NewStatsAggregator() *StatsAggregator {
	return &StatsAggregator{}
}

// Aggregate sums stored values only: TotalValue adds each record's stored
// TotalPrice (unparsable reads as 0) and never recomputes it.
func (a *StatsAggregator) Aggregate(records []domain.Record) Stats {
	total := domain.Zero()
	quantity := 0
	for _, r := range records {
		quantity += r.Quantity
		total = total.Add(r.TotalPrice.Money())
	}
	return Stats{
		Count:         len(records),
		TotalQuantity: quantity,
		TotalValue:    total.Round2(),
	}
}
