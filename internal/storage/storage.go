// Package storage is a string key/value store holding JSON-serialized lists
// under fixed names, the server-side counterpart of browser local storage.
package storage

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// Fixed storage keys.
const (
	KeyAuth      = "zambus-auth"
	KeyUsers     = "zambus-users"
	KeyCompanies = "zambus-companies"
	KeyRoutes    = "zambus-routes"
	KeyBuses     = "zambus-buses"
	KeySchedules = "zambus-schedules"
	KeyBookings  = "zambus-bookings"
	KeyPayments  = "zambus-payments"
)

type Storage interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	// SetItems writes every pair or none of them.
	SetItems(ctx context.Context, items map[string]string) error
}

// Memory is a process-lifetime Storage.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemory() *Memory {
	return &Memory{items: map[string]string{}}
}

func (m *Memory) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *Memory) SetItems(_ context.Context, items map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range items {
		m.items[k] = v
	}
	return nil
}

func (m *Memory) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Keys lists stored keys, mostly for tests.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.items))
	for k := range m.items {
		out = append(out, k)
	}
	return out
}

type prefixed struct {
	base   Storage
	prefix string
}

// WithPrefix scopes every key of base under prefix + ":".
func WithPrefix(base Storage, prefix string) Storage {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return base
	}
	return prefixed{base: base, prefix: prefix + ":"}
}

func (p prefixed) GetItem(ctx context.Context, key string) (string, bool, error) {
	return p.base.GetItem(ctx, p.prefix+key)
}

func (p prefixed) SetItem(ctx context.Context, key, value string) error {
	return p.base.SetItem(ctx, p.prefix+key, value)
}

func (p prefixed) SetItems(ctx context.Context, items map[string]string) error {
	scoped := make(map[string]string, len(items))
	for k, v := range items {
		scoped[p.prefix+k] = v
	}
	return p.base.SetItems(ctx, scoped)
}

func (p prefixed) RemoveItem(ctx context.Context, key string) error {
	return p.base.RemoveItem(ctx, p.prefix+key)
}

// GetJSON decodes the value under key into dst. It reports false when the key is absent.
func GetJSON(ctx context.Context, s Storage, key string, dst any) (bool, error) {
	raw, ok, err := s.GetItem(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if strings.TrimSpace(raw) == "" || raw == "null" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores v serialized as JSON under key.
func SetJSON(ctx context.Context, s Storage, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.SetItem(ctx, key, string(b))
}
