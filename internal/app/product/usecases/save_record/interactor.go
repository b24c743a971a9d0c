package save_record

import (
	"context"

	contracts "github.com/murkotick/inventory-ledger/internal/app/product/contracts"
	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
	"github.com/murkotick/inventory-ledger/internal/app/product/domain/services"
	"github.com/murkotick/inventory-ledger/internal/models/m_product"
)

// Request carries the stored record being edited and the edited draft.
type Request struct {
	Existing domain.Record
	Draft    domain.Draft
}

// Interactor replaces an existing record on the remote collection.
type Interactor struct {
	Remote  contracts.RemoteCollection
	Pricing *services.PricingCalculator
}

func NewInteractor(remote contracts.RemoteCollection) *Interactor {
	return &Interactor{
		Remote:  remote,
		Pricing: services.NewPricingCalculator(),
	}
}

// Execute sends the existing record overlaid by the draft, with a freshly computed total.
func (it *Interactor) Execute(ctx context.Context, req Request) (domain.Record, error) {
	if req.Existing.ID.IsZero() {
		return domain.Record{}, domain.ErrMissingRecordID
	}

	total := it.Pricing.DraftTotal(req.Draft)
	payload := m_product.BuildUpdatePayload(req.Existing, req.Draft, total)

	return it.Remote.Update(ctx, req.Existing.ID, payload)
}
