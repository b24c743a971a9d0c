package create_record

import (
	"context"

	contracts "github.com/murkotick/inventory-ledger/internal/app/product/contracts"
	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
	"github.com/murkotick/inventory-ledger/internal/app/product/domain/services"
	"github.com/murkotick/inventory-ledger/internal/models/m_product"
)

// Request is the application-level create-record request.
type Request struct {
	Draft domain.Draft
}

// Interactor submits a new record to the remote collection.
type Interactor struct {
	Remote  contracts.RemoteCollection
	Pricing *services.PricingCalculator
}

// NewInteractor constructs the interactor.
func NewInteractor(remote contracts.RemoteCollection) *Interactor {
	return &Interactor{
		Remote:  remote,
		Pricing: services.NewPricingCalculator(),
	}
}

// Execute fixes the total price and posts the draft. The server assigns the id.
func (it *Interactor) Execute(ctx context.Context, req Request) (domain.Record, error) {
	// 1. Total is derived once, here, and stored verbatim afterwards
	total := it.Pricing.DraftTotal(req.Draft)

	// 2. Body is the draft plus the total; no id
	payload := m_product.BuildCreatePayload(req.Draft, total)

	// 3. One round trip
	return it.Remote.Create(ctx, payload)
}
