package orders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CustomStatusUpdate carries an optional admin note and/or quoted price
// alongside a status change.
type CustomStatusUpdate struct {
	Status      string
	AdminNotes  *string
	QuotedPrice *int
}

// CustomStore is the in-memory custom-order collection.
type CustomStore struct {
	mu      sync.RWMutex
	orders  []CustomOrder
	delay   time.Duration
	nowFunc func() time.Time
}

// NewCustomStore seeds a store with its own copy of custom orders.
func NewCustomStore(seed []CustomOrder, delay time.Duration) *CustomStore {
	cp := make([]CustomOrder, len(seed))
	copy(cp, seed)
	return &CustomStore{orders: cp, delay: delay, nowFunc: time.Now}
}

func (s *CustomStore) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List returns all custom orders, optionally filtered by status, most
// recent first.
func (s *CustomStore) List(ctx context.Context, status string) ([]CustomOrder, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []CustomOrder{}
	for _, o := range s.orders {
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		result = append(result, o)
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result, nil
}

// Get fetches a custom order by id. Returns (nil, nil) if not found.
func (s *CustomStore) Get(ctx context.Context, id string) (*CustomOrder, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, nil
}

// Create appends a new request with status "new".
func (s *CustomStore) Create(ctx context.Context, o CustomOrder) (*CustomOrder, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	o.ID = uuid.NewString()
	if o.Status == "" {
		o.Status = CustomStatusNew
	}
	o.CreatedAt = now
	o.UpdatedAt = now
	s.orders = append(s.orders, o)
	return &o, nil
}

// Update assigns the status (any value reachable from any other), attaches
// the optional note and quoted price, and refreshes the last-modified
// timestamp.
func (s *CustomStore) Update(ctx context.Context, id string, upd CustomStatusUpdate) (*CustomOrder, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if upd.Status != "" {
			s.orders[i].Status = upd.Status
		}
		if upd.AdminNotes != nil {
			s.orders[i].AdminNotes = *upd.AdminNotes
		}
		if upd.QuotedPrice != nil {
			s.orders[i].QuotedPrice = upd.QuotedPrice
		}
		s.orders[i].UpdatedAt = s.nowFunc()
		cp := s.orders[i]
		return &cp, nil
	}
	return nil, ErrNotFound
}

// Count returns the number of custom requests, for dashboard stats.
func (s *CustomStore) Count(ctx context.Context) (int, error) {
	if err := s.wait(ctx); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders), nil
}
