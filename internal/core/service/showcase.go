package service

import (
	"github.com/niksmo/elegance-storefront/internal/core/domain"
	"github.com/niksmo/elegance-storefront/internal/core/port"
)

var _ port.ShowcaseProvider = (*Showcase)(nil)

// Showcase serves the session-independent catalog slices: the home
// page novelties and the promo page discounts.
type Showcase struct {
	catalog port.CatalogProvider
}

func NewShowcase(catalog port.CatalogProvider) Showcase {
	return Showcase{catalog}
}

func (s Showcase) NewArrivals() []domain.Product {
	var ps []domain.Product
	for _, p := range s.catalog.Products() {
		if p.IsNew {
			ps = append(ps, p)
		}
	}
	return ps
}

func (s Showcase) Discounted() []domain.Product {
	var ps []domain.Product
	for _, p := range s.catalog.Products() {
		if p.Discounted() {
			ps = append(ps, p)
		}
	}
	return ps
}
