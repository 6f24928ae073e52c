// Package notify delivers operation outcomes as transient toasts to the user
// who caused them. Delivery is fire-and-forget: a subscriber that is not
// keeping up misses messages.
package notify

import (
	"context"
	"sync"
	"time"

	"zambus/internal/domain"
	"zambus/internal/utils"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Toast struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	RequestID   string    `json:"requestId,omitempty"`
	At          time.Time `json:"at"`
	// UserID is the recipient. It is never sent to the client.
	UserID domain.ID `json:"-"`
}

type Notifier interface {
	Notify(ctx context.Context, t Toast)
}

// Success builds a default toast.
func Success(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: VariantDefault}
}

// Failure builds a destructive toast.
func Failure(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: VariantDestructive}
}

type subscriber struct {
	user domain.ID
	ch   chan Toast
}

// Hub routes toasts to the subscribers of their recipient.
type Hub struct {
	mu     sync.RWMutex
	subs   map[int]subscriber
	nextID int
	buffer int
	now    func() time.Time
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{subs: map[int]subscriber{}, buffer: buffer, now: time.Now}
}

// Notify logs t and offers it, without blocking, to every subscriber of
// t.UserID. A toast without a recipient is only logged.
func (h *Hub) Notify(_ context.Context, t Toast) {
	if t.At.IsZero() {
		t.At = h.now()
	}
	if t.Variant == "" {
		t.Variant = VariantDefault
	}

	ev := utils.Log().Info()
	if t.Variant == VariantDestructive {
		ev = utils.Log().Warn()
	}
	ev.Str("module", "NOTIFY").Str("request_id", t.RequestID).Int64("user_id", int64(t.UserID)).
		Str("title", t.Title).Msg(t.Description)

	if t.UserID == 0 {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		if sub.user != t.UserID {
			continue
		}
		select {
		case sub.ch <- t:
		default:
		}
	}
}

// Subscribe registers a listener for userID's toasts. The returned cancel
// func must be called to release it.
func (h *Hub) Subscribe(userID domain.ID) (<-chan Toast, func()) {
	ch := make(chan Toast, h.buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = subscriber{user: userID, ch: ch}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Subscribers reports the number of active listeners.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Discard drops every toast.
type Discard struct{}

func (Discard) Notify(context.Context, Toast) {}
