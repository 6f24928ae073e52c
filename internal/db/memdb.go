// Package db is the in-process entity store. Every collection lives in one
// State guarded by a single lock; writes run against a copy that replaces the
// live state only after the callback and persistence both succeed.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/storage"
)

// State is a snapshot of every collection.
type State struct {
	Users     []models.User
	Companies []models.Company
	Routes    []models.Route
	Buses     []models.Bus
	Schedules []models.Schedule
	Bookings  []models.Booking
	Payments  []models.Payment

	lastID map[string]domain.ID
}

// NextID hands out the next identifier for a collection name.
func (s *State) NextID(collection string) domain.ID {
	if s.lastID == nil {
		s.lastID = map[string]domain.ID{}
	}
	s.lastID[collection]++
	return s.lastID[collection]
}

// clone copies the collection slices. Nested slices (stops, company routes)
// are shared, so callers replace them instead of editing in place.
func (s *State) clone() *State {
	out := &State{
		Users:     append([]models.User(nil), s.Users...),
		Companies: append([]models.Company(nil), s.Companies...),
		Routes:    append([]models.Route(nil), s.Routes...),
		Buses:     append([]models.Bus(nil), s.Buses...),
		Schedules: append([]models.Schedule(nil), s.Schedules...),
		Bookings:  append([]models.Booking(nil), s.Bookings...),
		Payments:  append([]models.Payment(nil), s.Payments...),
		lastID:    make(map[string]domain.ID, len(s.lastID)),
	}
	for k, v := range s.lastID {
		out.lastID[k] = v
	}
	return out
}

func (s *State) recomputeIDs() {
	s.lastID = map[string]domain.ID{}
	track := func(name string, id domain.ID) {
		if id > s.lastID[name] {
			s.lastID[name] = id
		}
	}
	for _, v := range s.Users {
		track(storage.KeyUsers, v.ID)
	}
	for _, v := range s.Routes {
		track(storage.KeyRoutes, v.ID)
	}
	for _, v := range s.Buses {
		track(storage.KeyBuses, v.ID)
	}
	for _, v := range s.Schedules {
		track(storage.KeySchedules, v.ID)
	}
	for _, v := range s.Bookings {
		track(storage.KeyBookings, v.ID)
	}
	for _, v := range s.Payments {
		track(storage.KeyPayments, v.ID)
	}
}

// collections maps storage keys to the State fields they persist.
func (s *State) collections() map[string]any {
	return map[string]any{
		storage.KeyUsers:     &s.Users,
		storage.KeyCompanies: &s.Companies,
		storage.KeyRoutes:    &s.Routes,
		storage.KeyBuses:     &s.Buses,
		storage.KeySchedules: &s.Schedules,
		storage.KeyBookings:  &s.Bookings,
		storage.KeyPayments:  &s.Payments,
	}
}

type DB struct {
	mu    sync.RWMutex
	state *State
	store storage.Storage
	// saved holds the JSON last written per key, so a commit only sends what changed.
	saved map[string]string
}

// Open loads every collection from store. When nothing was stored yet and
// seed is true, the sample data set is installed and persisted.
func Open(ctx context.Context, store storage.Storage, seed bool) (*DB, error) {
	if store == nil {
		store = storage.NewMemory()
	}
	d := &DB{store: store, state: &State{}, saved: map[string]string{}}

	loaded := false
	for key, dst := range d.state.collections() {
		raw, present, err := store.GetItem(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", key, err)
		}
		if !present {
			continue
		}
		loaded = true
		if _, err := storage.GetJSON(ctx, store, key, dst); err != nil {
			return nil, fmt.Errorf("load %s: %w", key, err)
		}
		d.saved[key] = raw
	}

	if !loaded && seed {
		st, err := SeedState()
		if err != nil {
			return nil, err
		}
		d.state = st
		if err := d.persist(ctx, st); err != nil {
			return nil, err
		}
	}
	d.state.recomputeIDs()
	return d, nil
}

// Reset drops everything and optionally reseeds. Intended for test setup.
func (d *DB) Reset(ctx context.Context, seed bool) error {
	st := &State{}
	if seed {
		var err error
		if st, err = SeedState(); err != nil {
			return err
		}
	}
	st.recomputeIDs()

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.persist(ctx, st); err != nil {
		return err
	}
	d.state = st
	return nil
}

// View runs fn with read access. fn must not modify the state.
func (d *DB) View(fn func(*State) error) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return fn(d.state)
}

// Update runs fn against a copy of the state and commits the copy only if
// fn returns nil and the copy was persisted.
func (d *DB) Update(ctx context.Context, fn func(*State) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := d.state.clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := d.persist(ctx, next); err != nil {
		return domain.InternalError{Msg: "failed to save changes", Err: err}
	}
	d.state = next
	return nil
}

// persist writes the collections that differ from the last save as one batch.
func (d *DB) persist(ctx context.Context, st *State) error {
	changed := map[string]string{}
	for key, v := range st.collections() {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		if raw, ok := d.saved[key]; ok && raw == string(b) {
			continue
		}
		changed[key] = string(b)
	}
	if len(changed) == 0 {
		return nil
	}
	if err := d.store.SetItems(ctx, changed); err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	for k, v := range changed {
		d.saved[k] = v
	}
	return nil
}

// Storage exposes the backing key/value store (the auth store shares it).
func (d *DB) Storage() storage.Storage {
	return d.store
}
