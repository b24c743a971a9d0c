package domain

import (
	"strconv"
	"strings"
)

// Field names accepted by the draft form.
const (
	FieldMake        = "make"
	FieldModel       = "model"
	FieldDescription = "description"
	FieldQuantity    = "quantity"
	FieldUnitPrice   = "unitPrice"
)

// IsTextField reports whether name is a free-text form field.
func IsTextField(name string) bool {
	switch name {
	case FieldMake, FieldModel, FieldDescription:
		return true
	}
	return false
}

// IsNumericField reports whether name is a numeric form field.
func IsNumericField(name string) bool {
	return name == FieldQuantity || name == FieldUnitPrice
}

// RecordID is the opaque identifier the remote collection assigns on creation.
// It remembers whether the remote sent it as a number or as a string so it can
// be echoed back in the same form.
type RecordID struct {
	value   string
	numeric bool
}

// NewRecordID parses user or path input. Integer text becomes a numeric id in
// canonical form, so "007" and "7" name the same record.
func NewRecordID(s string) RecordID {
	s = strings.TrimSpace(s)
	if s == "" {
		return RecordID{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return RecordID{value: strconv.FormatInt(n, 10), numeric: true}
	}
	return RecordID{value: s}
}

// NewNumericRecordID wraps a raw JSON number literal.
func NewNumericRecordID(literal string) RecordID {
	return RecordID{value: literal, numeric: true}
}

// NewTextRecordID wraps an identifier that travels as a JSON string.
func NewTextRecordID(s string) RecordID {
	return RecordID{value: s}
}

func (id RecordID) String() string {
	return id.value
}

// IsNumeric reports whether the id travels as a JSON number.
func (id RecordID) IsNumeric() bool {
	return id.numeric
}

// IsZero reports whether no id has been assigned.
func (id RecordID) IsZero() bool {
	return id.value == ""
}

// PriceText is a stored decimal amount kept exactly as the remote returned it.
type PriceText string

// Money parses the stored text, reading empty or malformed values as zero.
func (p PriceText) Money() Money {
	return ParseMoneyOrZero(string(p))
}

// Record is a persisted inventory entity.
type Record struct {
	ID          RecordID
	Make        string
	Model       string
	Description string
	Quantity    int
	UnitPrice   float64

	// PriceKey is the JSON key the remote used for UnitPrice. Empty means the
	// default "unitPrice".
	PriceKey string

	// TotalPrice is fixed at submit time and never recomputed. It may drift from
	// Quantity*UnitPrice when those are changed without resubmitting.
	TotalPrice PriceText

	// Passthrough holds the raw JSON of remote fields this client does not model
	// (createdAt, updatedAt, ...), keyed by field name.
	Passthrough map[string][]byte
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := r
	if r.Passthrough != nil {
		out.Passthrough = make(map[string][]byte, len(r.Passthrough))
		for k, v := range r.Passthrough {
			out.Passthrough[k] = append([]byte(nil), v...)
		}
	}
	return out
}

// CloneRecords deep-copies a record list.
func CloneRecords(in []Record) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}

// Draft is the editable working copy behind the create/edit form.
// Its zero value is the default draft: empty text and zero numbers.
type Draft struct {
	Make        string
	Model       string
	Description string
	Quantity    float64
	UnitPrice   float64
}

// DefaultDraft returns the empty form state.
func DefaultDraft() Draft {
	return Draft{}
}

// DraftFromRecord seeds a draft from a stored record. Falsy record fields
// (empty text, zero numbers) map onto the same defaults a fresh draft uses.
func DraftFromRecord(r Record) Draft {
	d := DefaultDraft()
	if r.Make != "" {
		d.Make = r.Make
	}
	if r.Model != "" {
		d.Model = r.Model
	}
	if r.Description != "" {
		d.Description = r.Description
	}
	if r.Quantity != 0 {
		d.Quantity = float64(r.Quantity)
	}
	if r.UnitPrice != 0 {
		d.UnitPrice = r.UnitPrice
	}
	return d
}
