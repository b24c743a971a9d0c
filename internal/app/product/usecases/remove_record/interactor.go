package remove_record

import (
	"context"

	contracts "github.com/murkotick/inventory-ledger/internal/app/product/contracts"
	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
)

type Request struct {
	ID domain.RecordID
}

// Interactor deletes a record. Asking the user is the caller's job.
type Interactor struct {
	Remote contracts.RemoteCollection
}

func NewInteractor(remote contracts.RemoteCollection) *Interactor {
	return &Interactor{Remote: remote}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if req.ID.IsZero() {
		return domain.ErrMissingRecordID
	}
	return it.Remote.Delete(ctx, req.ID)
}
