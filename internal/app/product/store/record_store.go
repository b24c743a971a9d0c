package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	contracts "github.com/murkotick/inventory-ledger/internal/app/product/contracts"
	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
	"github.com/murkotick/inventory-ledger/internal/app/product/queries/list_records"
	"github.com/murkotick/inventory-ledger/internal/app/product/usecases/create_record"
	"github.com/murkotick/inventory-ledger/internal/app/product/usecases/remove_record"
	"github.com/murkotick/inventory-ledger/internal/app/product/usecases/save_record"
	"github.com/murkotick/inventory-ledger/internal/pkg/clock"
)

// DeletePrompt is the question put to the user before a record is removed.
const DeletePrompt = "Are you sure you want to delete this product?"

// Store owns the local record list. After every successful mutation it
// reloads the whole list from the remote instead of patching it locally, so
// the list only ever shows server-accepted state.
//
// The mutex guards state only and is never held across a remote call.
type Store struct {
	mu          sync.RWMutex
	records     []domain.Record
	pending     int // refreshes in flight
	refreshedAt time.Time

	list   *list_records.Handler
	create *create_record.Interactor
	save   *save_record.Interactor
	remove *remove_record.Interactor

	notifier  contracts.Notifier
	confirmer contracts.Confirmer
	clock     clock.Clock
	log       zerolog.Logger
}

// New wires a store around the remote collection. A nil confirmer declines
// every delete; a nil notifier drops failure notices after logging them.
func New(remote contracts.RemoteCollection, notifier contracts.Notifier, confirmer contracts.Confirmer, clk clock.Clock, log zerolog.Logger) *Store {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Store{
		records:   []domain.Record{},
		list:      list_records.NewHandler(remote),
		create:    create_record.NewInteractor(remote),
		save:      save_record.NewInteractor(remote),
		remove:    remove_record.NewInteractor(remote),
		notifier:  notifier,
		confirmer: confirmer,
		clock:     clk,
		log:       log.With().Str("component", "record_store").Logger(),
	}
}

// Records returns a copy of the current list in server order.
func (s *Store) Records() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneRecords(s.records)
}

// Find looks a record up by id in the current list.
func (s *Store) Find(id domain.RecordID) (domain.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return domain.Record{}, false
}

// State is loading while at least one refresh is in flight.
func (s *Store) State() domain.StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pending > 0 {
		return domain.StoreLoading
	}
	return domain.StoreIdle
}

// IsLoading is shorthand for State() == StoreLoading.
func (s *Store) IsLoading() bool {
	return s.State() == domain.StoreLoading
}

// RefreshedAt is the time of the last successful refresh, zero before the first.
func (s *Store) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}

// Refresh replaces the list wholesale with the remote's. On failure the
// previous list stays and the user is notified.
func (s *Store) Refresh(ctx context.Context) error {
	return s.refresh(ctx, s.actionLogger("refresh"))
}

// Create submits a new record, then refreshes.
func (s *Store) Create(ctx context.Context, draft domain.Draft) (domain.Record, error) {
	log := s.actionLogger("create")

	created, err := s.create.Execute(ctx, create_record.Request{Draft: draft})
	if err != nil {
		return domain.Record{}, s.fail(ctx, log, domain.ErrSave, err)
	}
	log.Info().Str("record_id", created.ID.String()).Msg("product created")

	return created, s.refresh(ctx, log)
}

// Save updates existing with the draft's fields, then refreshes.
func (s *Store) Save(ctx context.Context, existing domain.Record, draft domain.Draft) (domain.Record, error) {
	log := s.actionLogger("save").With().Str("record_id", existing.ID.String()).Logger()

	updated, err := s.save.Execute(ctx, save_record.Request{Existing: existing, Draft: draft})
	if err != nil {
		return domain.Record{}, s.fail(ctx, log, domain.ErrSave, err)
	}
	log.Info().Msg("product updated")

	return updated, s.refresh(ctx, log)
}

// Remove asks for confirmation and, only on a yes, deletes the record and
// refreshes. It reports whether the delete call was made and succeeded.
func (s *Store) Remove(ctx context.Context, id domain.RecordID) (bool, error) {
	log := s.actionLogger("remove").With().Str("record_id", id.String()).Logger()

	if s.confirmer == nil || !s.confirmer.Confirm(ctx, DeletePrompt) {
		log.Debug().Msg("delete declined")
		return false, nil
	}

	if err := s.remove.Execute(ctx, remove_record.Request{ID: id}); err != nil {
		return false, s.fail(ctx, log, domain.ErrDelete, err)
	}
	log.Info().Msg("product deleted")

	return true, s.refresh(ctx, log)
}

func (s *Store) refresh(ctx context.Context, log zerolog.Logger) error {
	s.beginLoading()
	defer s.endLoading()

	records, err := s.list.Execute(ctx)
	if err != nil {
		return s.fail(ctx, log, domain.ErrFetch, err)
	}

	now := s.clock.Now()
	s.mu.Lock()
	s.records = records
	s.refreshedAt = now
	s.mu.Unlock()

	log.Debug().Int("count", len(records)).Msg("products refreshed")
	return nil
}

func (s *Store) beginLoading() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *Store) endLoading() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}

// fail logs, notifies the user and returns the action error.
func (s *Store) fail(ctx context.Context, log zerolog.Logger, kind, cause error) error {
	aerr := &domain.ActionError{Kind: kind, Err: cause}
	log.Error().Err(cause).Msg(aerr.Message())
	if s.notifier != nil {
		s.notifier.Notify(ctx, aerr.Message())
	}
	return aerr
}

func (s *Store) actionLogger(action string) zerolog.Logger {
	return s.log.With().Str("action", action).Str("action_id", uuid.NewString()).Logger()
}
