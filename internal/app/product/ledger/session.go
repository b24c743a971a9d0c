package ledger

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
	"github.com/murkotick/inventory-ledger/internal/app/product/domain/services"
	"github.com/murkotick/inventory-ledger/internal/app/product/draft"
	"github.com/murkotick/inventory-ledger/internal/app/product/store"
)

// Session maps user actions onto the record store and the draft form.
// A presenter renders from its accessors after each call.
type Session struct {
	store      *store.Store
	form       *draft.Controller
	aggregator *services.StatsAggregator
	submitting atomic.Bool
	log        zerolog.Logger
}

func NewSession(st *store.Store, form *draft.Controller, log zerolog.Logger) *Session {
	return &Session{
		store:      st,
		form:       form,
		aggregator: services.NewStatsAggregator(),
		log:        log.With().Str("component", "ledger").Logger(),
	}
}

// Load performs the initial fetch.
func (s *Session) Load(ctx context.Context) error {
	return s.store.Refresh(ctx)
}

func (s *Session) Records() []domain.Record {
	return s.store.Records()
}

func (s *Session) IsLoading() bool {
	return s.store.IsLoading()
}

// Stats recomputes the counters from the current list.
func (s *Session) Stats() services.Stats {
	return s.aggregator.Aggregate(s.store.Records())
}

// Form exposes the draft controller for rendering.
func (s *Session) Form() *draft.Controller {
	return s.form
}

func (s *Session) OpenCreate() {
	s.form.OpenForCreate()
}

// OpenEdit opens the form for the listed record with the given id.
func (s *Session) OpenEdit(id domain.RecordID) error {
	rec, ok := s.store.Find(id)
	if !ok {
		return domain.ErrRecordNotFound
	}
	s.form.OpenForEdit(rec)
	return nil
}

func (s *Session) SetField(name, raw string) error {
	return s.form.SetField(name, raw)
}

// LiveTotal is the total shown inside the open form.
func (s *Session) LiveTotal() domain.Money {
	return s.form.ComputeTotal()
}

// Cancel closes the form without saving.
func (s *Session) Cancel() {
	s.form.Close()
}

// Submit validates the open draft, then creates or saves it. Only one
// submission may be in flight; a second is rejected with domain.ErrSubmissionInFlight.
// If the mutation fails the form stays open with its draft untouched. If only
// the follow-up refresh fails the form is closed and the fetch error returned.
func (s *Session) Submit(ctx context.Context) error {
	if !s.form.IsOpen() {
		return domain.ErrDraftClosed
	}
	d := s.form.Draft()
	if err := domain.ValidateDraft(d); err != nil {
		return err
	}
	if !s.submitting.CompareAndSwap(false, true) {
		s.log.Warn().Msg("duplicate submission rejected")
		return domain.ErrSubmissionInFlight
	}
	defer s.submitting.Store(false)

	var err error
	if existing, editing := s.form.ActiveRecord(); editing {
		_, err = s.store.Save(ctx, existing, d)
	} else {
		_, err = s.store.Create(ctx, d)
	}

	if err != nil && !errors.Is(err, domain.ErrFetch) {
		return err
	}
	s.form.Close()
	return err
}

// Delete removes a record after the store's confirmation gate.
func (s *Session) Delete(ctx context.Context, id domain.RecordID) (bool, error) {
	return s.store.Remove(ctx, id)
}
