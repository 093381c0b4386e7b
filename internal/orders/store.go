// Package orders holds the admin panel's order and custom-order
// collections: in-memory records mutated through simple status updates,
// with simulated fetch latency. These collections are seeded independently
// of the storefront cart; there is no shared source of truth.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound indicates a write targeted a record that does not exist.
var ErrNotFound = errors.New("order not found")

// Filters narrows a List call.
type Filters struct {
	Status string // empty or "all" for no filter
	From   time.Time
	To     time.Time
}

// Store is the in-memory order collection.
type Store struct {
	mu      sync.RWMutex
	orders  []Order
	delay   time.Duration
	nowFunc func() time.Time
	seq     int
}

// NewStore seeds a store with its own copy of orders.
func NewStore(seed []Order, delay time.Duration) *Store {
	cp := make([]Order, len(seed))
	copy(cp, seed)
	return &Store{orders: cp, delay: delay, nowFunc: time.Now, seq: len(seed)}
}

func (s *Store) wait(ctx context.Context) error {
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

// List returns orders matching the filters, most recent first.
func (s *Store) List(ctx context.Context, f Filters) ([]Order, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Order{}
	for _, o := range s.orders {
		if f.Status != "" && f.Status != "all" && o.Status != f.Status {
			continue
		}
		if !f.From.IsZero() && o.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && o.CreatedAt.After(f.To) {
			continue
		}
		result = append(result, o)
	}
	// newest first
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result, nil
}

// Get fetches an order by id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, id string) (*Order, error) {
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

// FindByNumberOrPhone looks an order up by order number (case-insensitive)
// or exact phone, for the track-order page. Returns (nil, nil) if nothing
// matches.
func (s *Store) FindByNumberOrPhone(ctx context.Context, query string) (*Order, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := strings.TrimSpace(query)
	for _, o := range s.orders {
		if strings.EqualFold(o.OrderNumber, q) || o.Phone == q {
			cp := o
			return &cp, nil
		}
	}
	return nil, nil
}

// Create appends a new order, assigning id, order number, and timestamps.
func (s *Store) Create(ctx context.Context, o Order) (*Order, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	s.seq++
	o.ID = uuid.NewString()
	o.OrderNumber = fmt.Sprintf("ORD-%d-%03d", now.Year(), s.seq)
	if o.Status == "" {
		o.Status = StatusPending
	}
	o.CreatedAt = now
	o.UpdatedAt = now
	s.orders = append(s.orders, o)
	return &o, nil
}

// UpdateStatus assigns a new status and refreshes the last-modified
// timestamp. Any status is reachable from any other.
func (s *Store) UpdateStatus(ctx context.Context, id, status string) (*Order, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = s.nowFunc()
			cp := s.orders[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// Stats summarizes the order collection for the dashboard. The custom
// request count is filled in by the caller from the custom-order store.
func (s *Store) Stats(ctx context.Context) (DashboardStats, error) {
	if err := s.wait(ctx); err != nil {
		return DashboardStats{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := DashboardStats{TotalOrders: len(s.orders)}
	for _, o := range s.orders {
		if o.Status != StatusCancelled {
			stats.TotalRevenue += o.Total
		}
		switch o.Status {
		case StatusPending:
			stats.PendingOrders++
		case StatusDelivered:
			stats.CompletedOrders++
		}
	}
	return stats, nil
}
