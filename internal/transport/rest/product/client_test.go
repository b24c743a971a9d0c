package product

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
)

type capturedRequest struct {
	Method      string
	Path        string
	RawPath     string
	ContentType string
	Body        string
}

// recorder is a test server that answers every request with a fixed status and
// body and keeps what it received.
type recorder struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
	body     string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	b, _ := io.ReadAll(req.Body)
	r.mu.Lock()
	r.requests = append(r.requests, capturedRequest{
		Method:      req.Method,
		Path:        req.URL.Path,
		RawPath:     req.URL.EscapedPath(),
		ContentType: req.Header.Get("Content-Type"),
		Body:        string(b),
	})
	status, body := r.status, r.body
	r.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (r *recorder) last(t *testing.T) capturedRequest {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.requests)
	return r.requests[len(r.requests)-1]
}

func newTestClient(t *testing.T, status int, body string) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{status: status, body: body}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c, rec
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("http://localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/products", c.ResourceURL())

	c, err = NewClient(" https://inventory.example.com/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://inventory.example.com/api/products", c.ResourceURL())

	c, err = NewClient("http://gw.local/inventory/")
	require.NoError(t, err)
	assert.Equal(t, "http://gw.local/inventory/api/products", c.ResourceURL())
}

func TestNewClient_Invalid(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "ftp://host", "http://", "://bad"} {
		_, err := NewClient(raw)
		assert.Error(t, err, raw)
	}

	_, err := NewClient("http://localhost:8080", WithUnitPriceKey("price"))
	assert.Error(t, err)
}

func TestClient_List(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `[{"id":1,"make":"A","model":"B","quantity":2,"unitPrice":10,"totalPrice":"20.00"}]`)

	records, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0].Make)
	assert.Equal(t, domain.PriceText("20.00"), records[0].TotalPrice)

	req := rec.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/products", req.Path)
	assert.Empty(t, req.Body)
}

func TestClient_List_EmptyBody(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, ``)

	records, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClient_List_MalformedBody(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"not":"a list"}`)

	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)

	var terr *domain.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, OpList, terr.Op)
}

func TestClient_List_ServerError(t *testing.T) {
	c, _ := newTestClient(t, http.StatusInternalServerError, `{"error":"boom"}`)

	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)

	var terr *domain.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.StatusCode)
	assert.Equal(t, http.MethodGet, terr.Method)
	assert.ErrorIs(t, err, errUnexpectedStatus)
}

func TestClient_Create(t *testing.T) {
	c, rec := newTestClient(t, http.StatusCreated, `{"id":9,"make":"A","model":"B","quantity":3,"unitPrice":10.005,"totalPrice":"30.02"}`)

	created, err := c.Create(context.Background(), map[string]interface{}{
		"make": "A", "model": "B", "description": "", "quantity": 3.0, "unitPrice": 10.005, "totalPrice": "30.02",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.NewNumericRecordID("9"), created.ID)

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/products", req.Path)
	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"make":"A","model":"B","description":"","quantity":3,"unitPrice":10.005,"totalPrice":"30.02"}`, req.Body)
}

func TestClient_Create_QuotedUnitPriceKey(t *testing.T) {
	rec := &recorder{status: http.StatusCreated, body: `{"id":9,"make":"A","quotedUnitPrice":2.5}`}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, WithUnitPriceKey("quotedUnitPrice"))
	require.NoError(t, err)

	payload := map[string]interface{}{"make": "A", "quantity": 2.0, "unitPrice": 2.5, "totalPrice": "5.00"}
	created, err := c.Create(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, 2.5, created.UnitPrice)
	assert.JSONEq(t, `{"make":"A","quantity":2,"quotedUnitPrice":2.5,"totalPrice":"5.00"}`, rec.last(t).Body)
	assert.Contains(t, payload, "unitPrice", "caller's payload is left as built")
}

func TestClient_Update(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"id":5,"make":"A2"}`)

	updated, err := c.Update(context.Background(), domain.NewRecordID("5"), map[string]interface{}{"make": "A2"})
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Make)

	req := rec.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/products/5", req.Path)
	assert.JSONEq(t, `{"make":"A2"}`, req.Body)
}

func TestClient_Update_EscapesID(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Update(context.Background(), domain.NewTextRecordID("a/b c"), map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "/api/products/a%2Fb%20c", rec.last(t).RawPath)
}

func TestClient_Update_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.StatusNotFound, ``)

	_, err := c.Update(context.Background(), domain.NewRecordID("404"), map[string]interface{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestClient_MissingID(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Update(context.Background(), domain.RecordID{}, map[string]interface{}{})
	assert.ErrorIs(t, err, domain.ErrMissingRecordID)
	assert.ErrorIs(t, err, domain.ErrTransport)

	err = c.Delete(context.Background(), domain.RecordID{})
	assert.ErrorIs(t, err, domain.ErrMissingRecordID)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Empty(t, rec.requests)
}

func TestClient_Delete(t *testing.T) {
	c, rec := newTestClient(t, http.StatusNoContent, ``)

	require.NoError(t, c.Delete(context.Background(), domain.NewRecordID("7")))

	req := rec.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/products/7", req.Path)
}

func TestClient_Delete_IgnoresBody(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `not json at all`)
	assert.NoError(t, c.Delete(context.Background(), domain.NewRecordID("7")))
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	srv.Close()

	_, err = c.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)

	var terr *domain.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.StatusCode)
}

func TestClient_CanceledContext(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.List(ctx)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}
