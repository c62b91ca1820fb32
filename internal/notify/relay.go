package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Relay is one session's ordered feedback queue. Each notification expires
// on its own timer; dismissal cancels only that notification's timer.
// Identical notifications stack, no dedup.
type Relay struct {
	mu     sync.Mutex
	ttl    time.Duration
	items  []Notification
	timers map[string]*time.Timer
}

func NewRelay(ttl time.Duration) *Relay {
	return &Relay{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
	}
}

func (r *Relay) Post(typ Type, title, message string) Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	r.items = append(r.items, n)
	r.timers[n.ID] = time.AfterFunc(r.ttl, func() {
		r.Dismiss(n.ID)
	})
	return n
}

func (r *Relay) Dismiss(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.timers[id]; ok {
		t.Stop()
		delete(r.timers, id)
	}
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

func (r *Relay) Active() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Hub hands out one relay per session.
type Hub struct {
	mu     sync.Mutex
	ttl    time.Duration
	relays map[string]*Relay
}

func NewHub(ttl time.Duration) *Hub {
	return &Hub{
		ttl:    ttl,
		relays: make(map[string]*Relay),
	}
}

func (h *Hub) Relay(sessionID string) *Relay {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.relays[sessionID]
	if !ok {
		r = NewRelay(h.ttl)
		h.relays[sessionID] = r
	}
	return r
}
