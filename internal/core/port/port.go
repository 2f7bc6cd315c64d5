package port

import (
	"net/http"

	"github.com/niksmo/elegance-storefront/internal/core/domain"
)

// CatalogProvider is the boundary to the product data source. The
// current implementation is a static in-memory literal, a real system
// would swap it for a storage or network fetch without touching the
// core contracts.
type CatalogProvider interface {
	Products() []domain.Product
	ProductByID(id int) (domain.Product, error)
	Categories() []string
	Brands() []string
}

type ShowcaseProvider interface {
	NewArrivals() []domain.Product
	Discounted() []domain.Product
}

type ContentProvider interface {
	SectionContent(domain.Section) (domain.SectionContent, error)
}

// ViewPublisher receives the recomputed view snapshot after every
// state mutation, before the next input is processed.
type ViewPublisher interface {
	Publish(sessionID string, v domain.ViewSnapshot)
}

// ViewState is the single-writer holder of one session's storefront
// state. Mutations are synchronous, reads return immutable snapshots.
type ViewState interface {
	Snapshot() domain.ViewSnapshot
	SetActiveSection(domain.Section)
	SetCartOpen(open bool)
	ToggleCategory(category string)
	ToggleBrand(brand string)
	SetPriceRange(domain.PriceRange) error
	ResetFilters()
	AddToCart(productID int) error
	RemoveFromCart(productID int)
	UpdateQuantity(productID, quantity int) error
}

type SessionStates interface {
	State(sessionID string) ViewState
}

type ViewStreamer interface {
	Stream(
		w http.ResponseWriter, r *http.Request,
		sessionID string, initial domain.ViewSnapshot,
	) error
}
