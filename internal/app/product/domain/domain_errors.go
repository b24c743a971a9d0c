package domain

import (
	"errors"
	"fmt"
)

// Action failure kinds surfaced to the user.
var (
	// ErrFetch indicates the record list could not be loaded.
	ErrFetch = errors.New("failed to fetch products")

	// ErrSave indicates a create or update call failed.
	ErrSave = errors.New("failed to save product")

	// ErrDelete indicates a delete call failed.
	ErrDelete = errors.New("failed to delete product")
)

// Remote collection errors
var (
	// ErrTransport matches every failure of a remote call: network, status or body.
	ErrTransport = errors.New("remote collection transport error")

	// ErrRecordNotFound indicates the addressed record does not exist.
	ErrRecordNotFound = errors.New("product not found")

	// ErrMissingRecordID indicates an update or delete was attempted without an id.
	ErrMissingRecordID = errors.New("product id is required")
)

// Form errors
var (
	// ErrUnknownField indicates a form field name the draft does not carry.
	ErrUnknownField = errors.New("unknown product field")

	// ErrDraftClosed indicates a form operation while no form is open.
	ErrDraftClosed = errors.New("product form is not open")

	// ErrSubmissionInFlight indicates the form was submitted again before the
	// previous submission finished.
	ErrSubmissionInFlight = errors.New("product submission already in progress")
)

// Draft validation errors, checked before a form is submitted
var (
	// ErrMakeRequired indicates an empty make.
	ErrMakeRequired = errors.New("make is required")

	// ErrModelRequired indicates an empty model.
	ErrModelRequired = errors.New("model is required")

	// ErrNegativeQuantity indicates a quantity below zero.
	ErrNegativeQuantity = errors.New("quantity cannot be negative")

	// ErrNegativePrice indicates a unit price below zero.
	ErrNegativePrice = errors.New("unit price cannot be negative")
)

// TransportError describes a failed round trip to the remote collection.
type TransportError struct {
	Op         string // list, create, update or delete
	Method     string
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s %s: status %d: %v", e.Op, e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes every TransportError match ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ActionError is what a store operation returns when it fails. Kind is one of
// ErrFetch, ErrSave or ErrDelete; Err is the cause.
type ActionError struct {
	Kind error
	Err  error
}

func (e *ActionError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

// Unwrap lets errors.Is match both the kind and the cause.
func (e *ActionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Message is the generic text shown to the user.
func (e *ActionError) Message() string {
	switch e.Kind {
	case ErrFetch:
		return "Failed to fetch products"
	case ErrSave:
		return "Failed to save product"
	case ErrDelete:
		return "Failed to delete product"
	}
	return "Operation failed"
}
