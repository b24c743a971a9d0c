package product

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
	"github.com/murkotick/inventory-ledger/internal/models/m_product"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Operation names used in logs and TransportError.Op.
const (
	OpList   = "list"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Client is the HTTP adapter for the remote product collection.
// It issues exactly one request per call and never retries.
type Client struct {
	resourceURL  string
	unitPriceKey string
	httpClient   *http.Client
	log          zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithUnitPriceKey sets the key new records carry their unit price under.
// Updates always reuse the key the stored record came with.
func WithUnitPriceKey(key string) Option {
	return func(c *Client) {
		c.unitPriceKey = key
	}
}

// NewClient builds a client for the collection rooted at baseURL
// (e.g. "http://localhost:8080"). The resource path is appended here.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: host is required", baseURL)
	}

	c := &Client{
		resourceURL:  strings.TrimRight(u.String(), "/") + m_product.ResourcePath,
		unitPriceKey: m_product.KeyUnitPrice,
		httpClient:   &http.Client{},
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !m_product.IsUnitPriceKey(c.unitPriceKey) {
		return nil, fmt.Errorf("unit price key %q: must be one of %v", c.unitPriceKey, m_product.UnitPriceKeys)
	}
	return c, nil
}

// ResourceURL returns the collection URL every call is addressed to.
func (c *Client) ResourceURL() string {
	return c.resourceURL
}

// List fetches every record.
func (c *Client) List(ctx context.Context) ([]domain.Record, error) {
	body, err := c.do(ctx, OpList, http.MethodGet, c.resourceURL, nil)
	if err != nil {
		return nil, err
	}
	records, err := m_product.DecodeRecords(body)
	if err != nil {
		return nil, transportError(OpList, http.MethodGet, c.resourceURL, 0, err)
	}
	return records, nil
}

// Create posts a new record. The payload's unit price is sent under the
// configured key.
func (c *Client) Create(ctx context.Context, payload map[string]interface{}) (domain.Record, error) {
	if c.unitPriceKey != m_product.KeyUnitPrice {
		out := make(map[string]interface{}, len(payload))
		for k, v := range payload {
			out[k] = v
		}
		m_product.RenameUnitPrice(out, c.unitPriceKey)
		payload = out
	}
	body, err := c.do(ctx, OpCreate, http.MethodPost, c.resourceURL, payload)
	if err != nil {
		return domain.Record{}, err
	}
	rec, err := m_product.DecodeRecord(body)
	if err != nil {
		return domain.Record{}, transportError(OpCreate, http.MethodPost, c.resourceURL, 0, err)
	}
	return rec, nil
}

// Update replaces the record addressed by id.
func (c *Client) Update(ctx context.Context, id domain.RecordID, payload map[string]interface{}) (domain.Record, error) {
	target := c.recordURL(id)
	if id.IsZero() {
		return domain.Record{}, transportError(OpUpdate, http.MethodPut, target, 0, domain.ErrMissingRecordID)
	}
	body, err := c.do(ctx, OpUpdate, http.MethodPut, target, payload)
	if err != nil {
		return domain.Record{}, err
	}
	rec, err := m_product.DecodeRecord(body)
	if err != nil {
		return domain.Record{}, transportError(OpUpdate, http.MethodPut, target, 0, err)
	}
	return rec, nil
}

// Delete removes the record addressed by id. Any response body is ignored.
func (c *Client) Delete(ctx context.Context, id domain.RecordID) error {
	target := c.recordURL(id)
	if id.IsZero() {
		return transportError(OpDelete, http.MethodDelete, target, 0, domain.ErrMissingRecordID)
	}
	_, err := c.do(ctx, OpDelete, http.MethodDelete, target, nil)
	return err
}

func (c *Client) recordURL(id domain.RecordID) string {
	return c.resourceURL + "/" + url.PathEscape(id.String())
}

func (c *Client) do(ctx context.Context, op, method, target string, payload interface{}) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, transportError(op, method, target, 0, fmt.Errorf("encode body: %w", err))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, transportError(op, method, target, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Str("method", method).Str("url", target).Msg("remote call failed")
		return nil, transportError(op, method, target, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.log.Debug().
		Str("op", op).
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("remote call")
	if err != nil {
		return nil, transportError(op, method, target, resp.StatusCode, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Str("op", op).Int("status", resp.StatusCode).Str("url", target).Msg("remote call rejected")
		return nil, transportError(op, method, target, resp.StatusCode, mapStatus(resp.StatusCode))
	}
	return body, nil
}
