// Package cart implements the buyer's current selection: line identity,
// quantity/variant mutations, and derived totals. Mutations return a Change
// describing what happened; notification is the caller's concern.
package cart

import (
	"math"
	"sync"

	"github.com/blackberrycakes/storefront/internal/catalog"
)

// Line is one cart entry. Two lines are the same line iff product id,
// selected size, and the eggless flag are all equal; the same product with a
// different size or variant is a distinct line.
type Line struct {
	Product      catalog.Product `json:"product"`
	Quantity     int             `json:"quantity"`
	SelectedSize float64         `json:"selectedSize,omitempty"` // pounds
	IsEggless    bool            `json:"isEggless,omitempty"`
}

// UnitPrice is product price × selected size for per-lb products with a size
// chosen, otherwise the flat product price.
func (l Line) UnitPrice() int {
	if l.Product.PricePerLb && l.SelectedSize > 0 {
		return int(math.Round(float64(l.Product.Price) * l.SelectedSize))
	}
	return l.Product.Price
}

// Subtotal is the line's unit price times its quantity.
func (l Line) Subtotal() int {
	return l.UnitPrice() * l.Quantity
}

// ChangeKind classifies a cart mutation.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeUpdated ChangeKind = "updated"
	ChangeRemoved ChangeKind = "removed"
	ChangeCleared ChangeKind = "cleared"
	ChangeNone    ChangeKind = "none"
)

// Change describes the outcome of a mutation so a presentation layer can
// decide whether and how to notify.
type Change struct {
	Kind         ChangeKind `json:"kind"`
	ProductID    string     `json:"productId,omitempty"`
	ProductName  string     `json:"productName,omitempty"`
	Quantity     int        `json:"quantity,omitempty"`
	SelectedSize float64    `json:"selectedSize,omitempty"`
}

// Persister saves and loads the cart's lines. Saves are fire-and-forget on
// every mutation.
type Persister interface {
	Save(lines []Line) error
	Load() ([]Line, error)
}

// Store owns the set of cart lines. All methods are safe for use from
// concurrent handlers; semantically there is a single writer (the buyer) and
// mutations are last-writer-wins.
//
// Identity rule: Add merges on the full (product, size, eggless) triple.
// Remove, UpdateQuantity, UpdateEggless, and Contains address lines by the
// (product, size) pair and apply to every variant of that pair.
type Store struct {
	mu        sync.Mutex
	lines     []Line
	persister Persister
}

// NewStore returns an empty cart. persister may be nil for an
// in-memory-only cart (as used in tests).
func NewStore(persister Persister) *Store {
	return &Store{persister: persister}
}

// NewStoreFromPersister returns a cart pre-populated from the persister.
// A load failure (including a corrupt or reshaped payload) yields an empty
// cart; the persister is expected to log the cause.
func NewStoreFromPersister(persister Persister) *Store {
	s := &Store{persister: persister}
	if persister != nil {
		if lines, err := persister.Load(); err == nil {
			s.lines = lines
		}
	}
	return s
}

// persistLocked writes the current lines; callers hold s.mu. Errors are
// dropped: local persistence is best-effort and never blocks a mutation.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	cp := make([]Line, len(s.lines))
	copy(cp, s.lines)
	_ = s.persister.Save(cp)
}

// Add puts quantity units of the product in the cart. If a line with the
// same (product, size, eggless) identity exists its quantity is incremented,
// otherwise a new line is appended. Quantity is deliberately not validated;
// callers historically pass whatever the UI holds.
func (s *Store) Add(p catalog.Product, quantity int, selectedSize float64, isEggless bool) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		l := &s.lines[i]
		if l.Product.ID == p.ID && l.SelectedSize == selectedSize && l.IsEggless == isEggless {
			l.Quantity += quantity
			s.persistLocked()
			return Change{Kind: ChangeUpdated, ProductID: p.ID, ProductName: p.Name, Quantity: l.Quantity, SelectedSize: selectedSize}
		}
	}

	s.lines = append(s.lines, Line{Product: p, Quantity: quantity, SelectedSize: selectedSize, IsEggless: isEggless})
	s.persistLocked()
	return Change{Kind: ChangeAdded, ProductID: p.ID, ProductName: p.Name, Quantity: quantity, SelectedSize: selectedSize}
}

// Remove deletes every line matching (productID, selectedSize), regardless
// of the eggless flag.
func (s *Store) Remove(productID string, selectedSize float64) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	removed := false
	for _, l := range s.lines {
		if l.Product.ID == productID && l.SelectedSize == selectedSize {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	s.lines = kept
	if !removed {
		return Change{Kind: ChangeNone, ProductID: productID, SelectedSize: selectedSize}
	}
	s.persistLocked()
	return Change{Kind: ChangeRemoved, ProductID: productID, SelectedSize: selectedSize}
}

// UpdateQuantity sets the quantity of lines matching (productID,
// selectedSize). A quantity of zero or less removes the line(s).
func (s *Store) UpdateQuantity(productID string, quantity int, selectedSize float64) Change {
	if quantity <= 0 {
		return s.Remove(productID, selectedSize)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := false
	var name string
	for i := range s.lines {
		l := &s.lines[i]
		if l.Product.ID == productID && l.SelectedSize == selectedSize {
			l.Quantity = quantity
			name = l.Product.Name
			updated = true
		}
	}
	if !updated {
		return Change{Kind: ChangeNone, ProductID: productID, SelectedSize: selectedSize}
	}
	s.persistLocked()
	return Change{Kind: ChangeUpdated, ProductID: productID, ProductName: name, Quantity: quantity, SelectedSize: selectedSize}
}

// UpdateEggless sets the eggless flag on lines matching (productID,
// selectedSize).
func (s *Store) UpdateEggless(productID string, isEggless bool, selectedSize float64) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := false
	var name string
	var qty int
	for i := range s.lines {
		l := &s.lines[i]
		if l.Product.ID == productID && l.SelectedSize == selectedSize {
			l.IsEggless = isEggless
			name = l.Product.Name
			qty = l.Quantity
			updated = true
		}
	}
	if !updated {
		return Change{Kind: ChangeNone, ProductID: productID, SelectedSize: selectedSize}
	}
	s.persistLocked()
	return Change{Kind: ChangeUpdated, ProductID: productID, ProductName: name, Quantity: qty, SelectedSize: selectedSize}
}

// Clear empties the cart.
func (s *Store) Clear() Change {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persistLocked()
	return Change{Kind: ChangeCleared}
}

// Total sums unit price × quantity across all lines.
func (s *Store) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// Count sums quantities across all lines (cart badge indicator).
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Contains reports whether any line matches (productID, selectedSize),
// ignoring the eggless flag.
func (s *Store) Contains(productID string, selectedSize float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lines {
		if l.Product.ID == productID && l.SelectedSize == selectedSize {
			return true
		}
	}
	return false
}

// HasCategory reports whether any line's product belongs to the category.
// Drives the upsell prompt ("cart has cakes but no decorations").
func (s *Store) HasCategory(category string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lines {
		if l.Product.Category == category {
			return true
		}
	}
	return false
}

// Lines returns a snapshot copy of the cart lines.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Line, len(s.lines))
	copy(cp, s.lines)
	return cp
}
