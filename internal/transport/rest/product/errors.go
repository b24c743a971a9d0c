package product

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
)

// errUnexpectedStatus is the cause recorded for non-2xx responses without a
// more specific mapping.
var errUnexpectedStatus = errors.New("unexpected response status")

// mapStatus translates a non-2xx HTTP status into a cause error.
// Response bodies are not inspected; the remote's validation messages are not surfaced.
func mapStatus(code int) error {
	switch code {
	case http.StatusNotFound:
		return domain.ErrRecordNotFound
	}
	return fmt.Errorf("%w: %d %s", errUnexpectedStatus, code, http.StatusText(code))
}

// transportError wraps a failed round trip.
func transportError(op, method, url string, status int, err error) error {
	if err == nil {
		return nil
	}
	return &domain.TransportError{
		Op:         op,
		Method:     method,
		URL:        url,
		StatusCode: status,
		Err:        err,
	}
}
