package service

import (
	"fmt"
	"sync"

	"github.com/niksmo/elegance-storefront/internal/core/domain"
	"github.com/niksmo/elegance-storefront/internal/core/port"
)

var _ port.ViewState = (*ViewState)(nil)

// ViewState owns all mutable state of one storefront session: active
// section, filter selections, cart contents and the cart drawer flag.
// It is the only writer, every other component sees read-only
// snapshots. After each mutation the recomputed snapshot is handed to
// the publisher so connected views redraw before the next input.
type ViewState struct {
	mu        sync.Mutex
	sessionID string
	catalog   port.CatalogProvider
	publisher port.ViewPublisher

	activeSection domain.Section
	filter        domain.Filter
	cart          domain.Cart
	cartOpen      bool
}

func NewViewState(
	sessionID string,
	catalog port.CatalogProvider,
	publisher port.ViewPublisher,
) *ViewState {
	return &ViewState{
		sessionID:     sessionID,
		catalog:       catalog,
		publisher:     publisher,
		activeSection: domain.SectionHome,
		filter:        domain.DefaultFilter(),
	}
}

func (s *ViewState) Snapshot() domain.ViewSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SetActiveSection switches the rendered section. The transition is
// unconditional and total over the valid tags, unknown tags are
// rejected earlier by [domain.ParseSection].
func (s *ViewState) SetActiveSection(section domain.Section) {
	s.mu.Lock()
	s.activeSection = section
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
}

func (s *ViewState) SetCartOpen(open bool) {
	s.mu.Lock()
	s.cartOpen = open
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
}

func (s *ViewState) ToggleCategory(category string) {
	s.mu.Lock()
	s.filter.ToggleCategory(category)
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
}

func (s *ViewState) ToggleBrand(brand string) {
	s.mu.Lock()
	s.filter.ToggleBrand(brand)
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
}

func (s *ViewState) SetPriceRange(r domain.PriceRange) error {
	const op = "ViewState.SetPriceRange"

	if err := r.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.filter.Price = r
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

func (s *ViewState) ResetFilters() {
	s.mu.Lock()
	s.filter.Reset()
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
}

// AddToCart merges the product into the cart by id. The cart engine
// itself does not check stock, see the handler layer for that guard.
func (s *ViewState) AddToCart(productID int) error {
	const op = "ViewState.AddToCart"

	p, err := s.catalog.ProductByID(productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.cart.Add(p)
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

func (s *ViewState) RemoveFromCart(productID int) {
	s.mu.Lock()
	s.cart.Remove(productID)
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
}

func (s *ViewState) UpdateQuantity(productID, quantity int) error {
	const op = "ViewState.UpdateQuantity"

	s.mu.Lock()
	err := s.cart.UpdateQuantity(productID, quantity)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

// snapshot recomputes the derived views from the current state.
// Callers must hold the mutex.
func (s *ViewState) snapshot() domain.ViewSnapshot {
	filtered := domain.FilterProducts(s.catalog.Products(), s.filter)
	return domain.ViewSnapshot{
		ActiveSection: s.activeSection,
		Filter:        s.filter.Clone(),
		Products:      filtered,
		FoundCount:    len(filtered),
		Cart:          s.cart.Items(),
		CartTotal:     s.cart.Total(),
		CartCount:     s.cart.ItemsCount(),
		CartOpen:      s.cartOpen,
	}
}

func (s *ViewState) publish(snap domain.ViewSnapshot) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(s.sessionID, snap)
}
