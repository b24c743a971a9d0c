package draft

import (
	"fmt"
	"sync"

	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
	"github.com/murkotick/inventory-ledger/internal/app/product/domain/services"
)

// Controller owns the create/edit form: which record is being edited, the
// working draft and whether the form is open.
type Controller struct {
	mu      sync.RWMutex
	state   domain.DraftState
	active  *domain.Record
	draft   domain.Draft
	changes *domain.ChangeTracker
	pricing *services.PricingCalculator
}

func NewController() *Controller {
	return &Controller{
		state:   domain.DraftClosed,
		draft:   domain.DefaultDraft(),
		changes: domain.NewChangeTracker(),
		pricing: services.NewPricingCalculator(),
	}
}

// OpenForCreate opens an empty form for a new record.
func (c *Controller) OpenForCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = nil
	c.draft = domain.DefaultDraft()
	c.changes.Clear()
	c.state = domain.DraftCreating
}

// OpenForEdit opens the form seeded from record.
func (c *Controller) OpenForEdit(record domain.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := record.Clone()
	c.active = &r
	c.draft = domain.DraftFromRecord(record)
	c.changes.Clear()
	c.state = domain.DraftEditing
}

// SetField assigns one form field from raw input. Text is taken verbatim;
// numbers go through domain.ParseNumeric and fall back to 0 when invalid.
func (c *Controller) SetField(name, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.IsOpen() {
		return domain.ErrDraftClosed
	}

	switch name {
	case domain.FieldMake:
		c.draft.Make = raw
	case domain.FieldModel:
		c.draft.Model = raw
	case domain.FieldDescription:
		c.draft.Description = raw
	case domain.FieldQuantity:
		c.draft.Quantity = domain.ParseNumeric(raw).OrZero()
	case domain.FieldUnitPrice:
		c.draft.UnitPrice = domain.ParseNumeric(raw).OrZero()
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
	}
	c.changes.MarkDirty(name)
	return nil
}

// Close hides the form. The draft is left as is; the next Open call resets it.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = domain.DraftClosed
}

// ComputeTotal is the live total shown in the open form. It is not persisted.
func (c *Controller) ComputeTotal() domain.Money {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pricing.DraftTotal(c.draft)
}

func (c *Controller) State() domain.DraftState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) IsOpen() bool {
	return c.State().IsOpen()
}

// Draft returns a copy of the working draft.
func (c *Controller) Draft() domain.Draft {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.draft
}

// EditedFields lists the fields set since the form was opened, sorted.
func (c *Controller) EditedFields() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.changes.DirtyFields()
}

// Edited reports whether field was set since the form was opened.
func (c *Controller) Edited(field string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.changes.Dirty(field)
}

// HasChanges reports whether any field was set since the form was opened.
func (c *Controller) HasChanges() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.changes.HasChanges()
}

// ActiveRecord returns the record being edited; ok is false while creating or closed.
func (c *Controller) ActiveRecord() (domain.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.active == nil || c.state != domain.DraftEditing {
		return domain.Record{}, false
	}
	return c.active.Clone(), true
}
