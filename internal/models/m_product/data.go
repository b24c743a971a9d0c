package m_product

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"

	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var nullLiteral = []byte("null")

// ErrFractionalQuantity indicates a stored quantity that is not a whole number
// or does not fit an int.
var ErrFractionalQuantity = errors.New("quantity must be a whole number")

// DecodeRecords parses a list response. An empty or null body is an empty list.
func DecodeRecords(raw []byte) ([]domain.Record, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, nullLiteral) {
		return []domain.Record{}, nil
	}

	var items []stdjson.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode product list: %w", err)
	}

	out := make([]domain.Record, 0, len(items))
	for i, item := range items {
		r, err := DecodeRecord(item)
		if err != nil {
			return nil, fmt.Errorf("decode product list item %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// DecodeRecord parses a single product object. Fields the domain does not model
// are kept verbatim in Record.Passthrough.
func DecodeRecord(raw []byte) (domain.Record, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, nullLiteral) {
		return domain.Record{}, nil
	}

	var fields map[string]stdjson.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.Record{}, fmt.Errorf("decode product: %w", err)
	}

	var (
		r      domain.Record
		err    error
		quoted stdjson.RawMessage
	)
	for key, value := range fields {
		switch key {
		case KeyID:
			r.ID, err = decodeID(value)
		case KeyMake:
			r.Make, err = decodeText(value)
		case KeyModel:
			r.Model, err = decodeText(value)
		case KeyDescription:
			r.Description, err = decodeText(value)
		case KeyQuantity:
			r.Quantity, err = decodeQuantity(value)
		case KeyUnitPrice:
			r.UnitPrice, err = decodeNumber(value)
		case KeyQuotedUnitPrice:
			quoted = value
		case KeyTotalPrice:
			r.TotalPrice, err = decodePriceText(value)
		default:
			if r.Passthrough == nil {
				r.Passthrough = make(map[string][]byte)
			}
			r.Passthrough[key] = append([]byte(nil), value...)
		}
		if err != nil {
			return domain.Record{}, fmt.Errorf("decode product field %q: %w", key, err)
		}
	}

	// The alias only supplies the price when unitPrice is absent; otherwise it
	// is kept as an ordinary passthrough field.
	if quoted != nil {
		if _, ok := fields[KeyUnitPrice]; ok {
			if r.Passthrough == nil {
				r.Passthrough = make(map[string][]byte)
			}
			r.Passthrough[KeyQuotedUnitPrice] = append([]byte(nil), quoted...)
		} else {
			if r.UnitPrice, err = decodeNumber(quoted); err != nil {
				return domain.Record{}, fmt.Errorf("decode product field %q: %w", KeyQuotedUnitPrice, err)
			}
			r.PriceKey = KeyQuotedUnitPrice
		}
	}
	return r, nil
}

// BuildCreatePayload is the POST body: the draft plus the submit-time total.
// The unit price goes under KeyUnitPrice; see RenameUnitPrice.
func BuildCreatePayload(d domain.Draft, total domain.Money) map[string]interface{} {
	m := draftValues(d, KeyUnitPrice)
	m[KeyTotalPrice] = total.String()
	return m
}

// BuildUpdatePayload is the PUT body: every stored field of existing, overlaid
// by the draft fields and the recomputed total. Draft values win on collision,
// and the draft's unit price replaces the value under every unit price key the
// record carries, so the body never holds two different prices.
func BuildUpdatePayload(existing domain.Record, d domain.Draft, total domain.Money) map[string]interface{} {
	m := RecordValues(existing)
	for k, v := range draftValues(d, unitPriceKey(existing)) {
		m[k] = v
	}
	for _, k := range UnitPriceKeys {
		if _, ok := m[k]; ok {
			m[k] = d.UnitPrice
		}
	}
	m[KeyTotalPrice] = total.String()
	return m
}

// RecordValues flattens a record back into its JSON document form. Raw values
// are json.RawMessage so any encoder writes them verbatim. The unit price is
// written under the key the remote sent it with.
func RecordValues(r domain.Record) map[string]interface{} {
	m := make(map[string]interface{}, 7+len(r.Passthrough))
	for k, v := range r.Passthrough {
		m[k] = stdjson.RawMessage(v)
	}
	if !r.ID.IsZero() {
		m[KeyID] = encodeID(r.ID)
	}
	m[KeyMake] = r.Make
	m[KeyModel] = r.Model
	m[KeyDescription] = r.Description
	m[KeyQuantity] = r.Quantity
	m[unitPriceKey(r)] = r.UnitPrice
	m[KeyTotalPrice] = string(r.TotalPrice)
	return m
}

// RenameUnitPrice moves the unit price of a payload built with KeyUnitPrice
// under key. It is a no-op for KeyUnitPrice or a payload without a price.
func RenameUnitPrice(payload map[string]interface{}, key string) {
	if key == KeyUnitPrice {
		return
	}
	v, ok := payload[KeyUnitPrice]
	if !ok {
		return
	}
	delete(payload, KeyUnitPrice)
	payload[key] = v
}

func draftValues(d domain.Draft, priceKey string) map[string]interface{} {
	return map[string]interface{}{
		KeyMake:        d.Make,
		KeyModel:       d.Model,
		KeyDescription: d.Description,
		KeyQuantity:    d.Quantity,
		priceKey:       d.UnitPrice,
	}
}

func unitPriceKey(r domain.Record) string {
	if r.PriceKey != "" {
		return r.PriceKey
	}
	return KeyUnitPrice
}

func encodeID(id domain.RecordID) interface{} {
	if id.IsNumeric() {
		return stdjson.RawMessage(id.String())
	}
	return id.String()
}

func decodeID(raw stdjson.RawMessage) (domain.RecordID, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, nullLiteral):
		return domain.RecordID{}, nil
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return domain.RecordID{}, err
		}
		return domain.NewTextRecordID(s), nil
	}
	var n stdjson.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return domain.RecordID{}, err
	}
	return domain.NewNumericRecordID(n.String()), nil
}

func decodeText(raw stdjson.RawMessage) (string, error) {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	if s == nil {
		return "", nil
	}
	return *s, nil
}

// decodeQuantity is decodeNumber restricted to whole numbers that fit an int.
func decodeQuantity(raw stdjson.RawMessage) (int, error) {
	f, err := decodeNumber(raw)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%w: %v", ErrFractionalQuantity, f)
	}
	return int(f), nil
}

// decodeNumber accepts JSON numbers, numeric strings and null (zero).
func decodeNumber(raw stdjson.RawMessage) (float64, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}
	if v == nil {
		return 0, nil
	}
	return cast.ToFloat64E(v)
}

// decodePriceText keeps the literal text of a price sent as a string or a number.
func decodePriceText(raw stdjson.RawMessage) (domain.PriceText, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, nullLiteral):
		return "", nil
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return domain.PriceText(s), nil
	}
	var n stdjson.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return domain.PriceText(n.String()), nil
}
