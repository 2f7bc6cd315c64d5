package catalog

import (
	"fmt"
	"slices"

	"github.com/niksmo/elegance-storefront/internal/core/domain"
	"github.com/niksmo/elegance-storefront/internal/core/port"
)

var _ port.CatalogProvider = (*Catalog)(nil)

// Catalog is the static in-memory product source. Records are created
// once at startup and never mutated, reads hand out copies.
type Catalog struct {
	products   []domain.Product
	categories []string
	brands     []string
}

func New() Catalog {
	return Catalog{
		products:   seedProducts(),
		categories: []string{"Парфюмерия", "Уход за лицом", "Макияж"},
		brands:     []string{"LUMIÈRE", "BELLE VIE", "LUXE"},
	}
}

func (c Catalog) Products() []domain.Product {
	return slices.Clone(c.products)
}

func (c Catalog) ProductByID(id int) (domain.Product, error) {
	const op = "Catalog.ProductByID"

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf(
		"%s: %w: id=%d", op, domain.ErrProductNotFound, id,
	)
}

func (c Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

func (c Catalog) Brands() []string {
	return slices.Clone(c.brands)
}

func discount(percent int) *int {
	return &percent
}

func seedProducts() []domain.Product {
	const cdn = "https://cdn.poehali.dev/projects/cad820ec-f1e6-4a32-8f3d-0cbccce390ad/files/"
	return []domain.Product{
		{
			ID:          1,
			Name:        "Eau de Parfum Essence",
			Brand:       "LUMIÈRE",
			Price:       8500,
			Category:    "Парфюмерия",
			Image:       cdn + "685a1b05-20c1-4237-a9aa-f5be1e9d66f6.jpg",
			Description: "Изысканный аромат с нотами бергамота и жасмина",
			Volume:      "50 мл",
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:          2,
			Name:        "Rose Gold Cream",
			Brand:       "BELLE VIE",
			Price:       5200,
			Category:    "Уход за лицом",
			Image:       cdn + "190984c1-52b7-4670-982d-bc9ca8dfafd0.jpg",
			Description: "Питательный крем для сияния кожи",
			Volume:      "30 мл",
			InStock:     true,
			Discount:    discount(15),
		},
		{
			ID:          3,
			Name:        "Velvet Lipstick",
			Brand:       "LUXE",
			Price:       2800,
			Category:    "Макияж",
			Image:       cdn + "399552aa-8d6c-44ba-9b7c-e0e98355e7c6.jpg",
			Description: "Бархатная помада с долгим эффектом",
			Volume:      "3.5 г",
			InStock:     true,
		},
		{
			ID:          4,
			Name:        "Hydrating Serum",
			Brand:       "BELLE VIE",
			Price:       6800,
			Category:    "Уход за лицом",
			Image:       cdn + "190984c1-52b7-4670-982d-bc9ca8dfafd0.jpg",
			Description: "Увлажняющая сыворотка с гиалуроновой кислотой",
			Volume:      "30 мл",
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:          5,
			Name:        "Midnight Perfume",
			Brand:       "LUMIÈRE",
			Price:       9200,
			Category:    "Парфюмерия",
			Image:       cdn + "685a1b05-20c1-4237-a9aa-f5be1e9d66f6.jpg",
			Description: "Вечерний аромат с нотами амбры и ванили",
			Volume:      "75 мл",
			InStock:     true,
			Discount:    discount(20),
		},
		{
			ID:          6,
			Name:        "Satin Blush",
			Brand:       "LUXE",
			Price:       2400,
			Category:    "Макияж",
			Image:       cdn + "399552aa-8d6c-44ba-9b7c-e0e98355e7c6.jpg",
			Description: "Шелковистые румяна для естественного сияния",
			Volume:      "5 г",
			InStock:     false,
		},
	}
}
