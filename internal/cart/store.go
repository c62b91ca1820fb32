package cart

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
)

var ErrLineNotFound = errors.New("cart line not found")

// Line is one distinct product+color+size entry in a cart.
type Line struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"` // minor currency units
	ImageKey  string `json:"image_reference,omitempty"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

// LineInput carries no quantity or id; quantity starts at 1 and the id is
// generated on first add.
type LineInput struct {
	ProductID string
	Name      string
	UnitPrice int64
	ImageKey  string
	Color     string
	Size      string
}

type Snapshot struct {
	Lines []Line `json:"lines"`
	Total int64  `json:"total"`
	Count int    `json:"count"`
}

// Persister mirrors a session's full line collection to a durable slot.
type Persister interface {
	Save(ctx context.Context, sessionID string, lines []Line) error
	Load(ctx context.Context, sessionID string) ([]Line, error)
}

// Store is the authoritative in-session cart. Lines merge by
// (product, color, size); every mutation writes the whole collection
// through to the persister. Persistence failures are logged and do not
// fail the mutation.
type Store struct {
	mu        sync.Mutex
	persister Persister
	maxQty    int // 0 = unlimited
	carts     map[string][]Line
	loaded    map[string]bool
}

func NewStore(persister Persister, maxQuantity int) *Store {
	return &Store{
		persister: persister,
		maxQty:    maxQuantity,
		carts:     make(map[string][]Line),
		loaded:    make(map[string]bool),
	}
}

// ensureLoaded reads the persisted slot once per session. Malformed or
// missing data yields an empty cart, never an error. Caller holds the lock.
func (s *Store) ensureLoaded(ctx context.Context, sessionID string) {
	if s.loaded[sessionID] {
		return
	}
	s.loaded[sessionID] = true

	lines, err := s.persister.Load(ctx, sessionID)
	if err != nil {
		log.Printf("cart: load for session %s failed, starting empty: %v", sessionID, err)
		return
	}
	s.carts[sessionID] = lines
}

func (s *Store) persist(ctx context.Context, sessionID string) {
	if err := s.persister.Save(ctx, sessionID, s.carts[sessionID]); err != nil {
		log.Printf("cart: persist for session %s failed: %v", sessionID, err)
	}
}

// Add merges into an existing line with the same (product, color, size)
// tuple, or appends a new line with quantity 1.
func (s *Store) Add(ctx context.Context, sessionID string, input LineInput) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx, sessionID)

	lines := s.carts[sessionID]
	merged := false
	for i := range lines {
		if lines[i].ProductID == input.ProductID && lines[i].Color == input.Color && lines[i].Size == input.Size {
			if s.maxQty == 0 || lines[i].Quantity < s.maxQty {
				lines[i].Quantity++
			}
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, Line{
			ID:        uuid.NewString(),
			ProductID: input.ProductID,
			Name:      input.Name,
			UnitPrice: input.UnitPrice,
			ImageKey:  input.ImageKey,
			Color:     input.Color,
			Size:      input.Size,
			Quantity:  1,
		})
	}
	s.carts[sessionID] = lines

	s.persist(ctx, sessionID)
	return snapshotOf(lines)
}

// Remove deletes the line with the given id; removing an absent line is a
// no-op.
func (s *Store) Remove(ctx context.Context, sessionID, lineID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx, sessionID)

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ID == lineID {
			lines = append(lines[:i], lines[i+1:]...)
			break
		}
	}
	s.carts[sessionID] = lines

	s.persist(ctx, sessionID)
	return snapshotOf(lines)
}

// SetQuantity overwrites a line's quantity; qty <= 0 removes the line.
func (s *Store) SetQuantity(ctx context.Context, sessionID, lineID string, qty int) (Snapshot, error) {
	if qty <= 0 {
		return s.Remove(ctx, sessionID, lineID), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx, sessionID)

	lines := s.carts[sessionID]
	found := false
	for i := range lines {
		if lines[i].ID == lineID {
			if s.maxQty > 0 && qty > s.maxQty {
				qty = s.maxQty
			}
			lines[i].Quantity = qty
			found = true
			break
		}
	}
	if !found {
		return snapshotOf(lines), ErrLineNotFound
	}

	s.persist(ctx, sessionID)
	return snapshotOf(lines), nil
}

// Clear empties the session's cart. Called only after confirmed payment.
func (s *Store) Clear(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx, sessionID)

	s.carts[sessionID] = nil
	s.persist(ctx, sessionID)
}

// Snapshot returns the current lines plus derived total and count.
func (s *Store) Snapshot(ctx context.Context, sessionID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx, sessionID)

	return snapshotOf(s.carts[sessionID])
}

func snapshotOf(lines []Line) Snapshot {
	snap := Snapshot{Lines: make([]Line, len(lines))}
	copy(snap.Lines, lines)
	for _, l := range lines {
		snap.Total += l.UnitPrice * int64(l.Quantity)
		snap.Count += l.Quantity
	}
	return snap
}
