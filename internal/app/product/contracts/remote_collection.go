package contracts

import (
	"context"

	domain "github.com/murkotick/inventory-ledger/internal/app/product/domain"
)

// RemoteCollection is the record collection served by the backend.
// Every method is one round trip with no retries; failures match domain.ErrTransport.
type RemoteCollection interface {
	// List returns all records in server order.
	List(ctx context.Context) ([]domain.Record, error)

	// Create posts a new record body and returns the record the server stored.
	Create(ctx context.Context, payload map[string]interface{}) (domain.Record, error)

	// Update replaces the record addressed by id with payload.
	Update(ctx context.Context, id domain.RecordID, payload map[string]interface{}) (domain.Record, error)

	// Delete removes the record addressed by id.
	Delete(ctx context.Context, id domain.RecordID) error
}
