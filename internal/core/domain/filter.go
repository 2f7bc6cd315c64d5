package domain

import (
	"fmt"
	"slices"
)

const (
	PriceFloor = 0
	PriceCeil  = 10000
)

type PriceRange struct {
	Min int
	Max int
}

func FullPriceRange() PriceRange {
	return PriceRange{Min: PriceFloor, Max: PriceCeil}
}

func (r PriceRange) Contains(price int) bool {
	return r.Min <= price && price <= r.Max
}

func (r PriceRange) Validate() error {
	if r.Min > r.Max || r.Min < PriceFloor || r.Max > PriceCeil {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidPriceRange, r.Min, r.Max)
	}
	return nil
}

// Filter holds the catalog selection state. Empty selection sets act as
// match-all, not match-none.
type Filter struct {
	Categories []string
	Brands     []string
	Price      PriceRange
}

func DefaultFilter() Filter {
	return Filter{Price: FullPriceRange()}
}

// ToggleCategory adds the category to the selection set or removes it
// when already present. The set never holds duplicates.
func (f *Filter) ToggleCategory(category string) {
	f.Categories = toggle(f.Categories, category)
}

func (f *Filter) ToggleBrand(brand string) {
	f.Brands = toggle(f.Brands, brand)
}

func (f *Filter) Reset() {
	*f = DefaultFilter()
}

// Matches reports whether the product passes every active predicate.
func (f Filter) Matches(p Product) bool {
	categoryMatch := len(f.Categories) == 0 ||
		slices.Contains(f.Categories, p.Category)
	brandMatch := len(f.Brands) == 0 || slices.Contains(f.Brands, p.Brand)
	return categoryMatch && brandMatch && f.Price.Contains(p.Price)
}

// FilterProducts returns the products passing the filter, preserving
// the source order. Pure function, safe to recompute on every change.
func FilterProducts(ps []Product, f Filter) []Product {
	var filtered []Product
	for _, p := range ps {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (f Filter) Clone() Filter {
	return Filter{
		Categories: slices.Clone(f.Categories),
		Brands:     slices.Clone(f.Brands),
		Price:      f.Price,
	}
}

func toggle(set []string, v string) []string {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(set, i, i+1)
	}
	return append(set, v)
}
