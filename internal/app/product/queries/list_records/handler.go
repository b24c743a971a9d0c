package list_records

import (
	"context"

	contracts "github.com/murkotick/inventory-ledger/internal/app/product/contracts"
	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
)

type Handler struct {
	remote contracts.RemoteCollection
}

func NewHandler(r contracts.RemoteCollection) *Handler {
	return &Handler{remote: r}
}

// Execute returns the full record list. A nil result from the remote is
// normalised to an empty list.
func (h *Handler) Execute(ctx context.Context) ([]domain.Record, error) {
	records, err := h.remote.List(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}
