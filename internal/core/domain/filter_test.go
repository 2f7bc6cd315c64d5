package domain_test

import (
	"testing"

	"github.com/niksmo/elegance-storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Brand: "LUMIÈRE", Category: "Парфюмерия", Price: 8500},
		{ID: 2, Brand: "BELLE VIE", Category: "Уход за лицом", Price: 5200},
		{ID: 3, Brand: "LUXE", Category: "Макияж", Price: 2800},
		{ID: 4, Brand: "BELLE VIE", Category: "Уход за лицом", Price: 6800},
		{ID: 5, Brand: "LUMIÈRE", Category: "Парфюмерия", Price: 9200},
		{ID: 6, Brand: "LUXE", Category: "Макияж", Price: 2400},
	}
}

func ids(ps []domain.Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	t.Run("EmptySelectionsMatchAll", func(t *testing.T) {
		got := domain.FilterProducts(testProducts(), domain.DefaultFilter())
		assert.Equal(t, testProducts(), got)
	})

	t.Run("CategoryOnly", func(t *testing.T) {
		f := domain.DefaultFilter()
		f.ToggleCategory("Макияж")

		got := domain.FilterProducts(testProducts(), f)
		assert.Equal(t, []int{3, 6}, ids(got))
	})

	t.Run("BrandOnly", func(t *testing.T) {
		f := domain.DefaultFilter()
		f.ToggleBrand("BELLE VIE")

		got := domain.FilterProducts(testProducts(), f)
		assert.Equal(t, []int{2, 4}, ids(got))
	})

	t.Run("PriceOnly", func(t *testing.T) {
		f := domain.DefaultFilter()
		f.Price = domain.PriceRange{Min: 3000, Max: 7000}

		got := domain.FilterProducts(testProducts(), f)
		assert.Equal(t, []int{2, 4}, ids(got))
	})

	t.Run("Conjunction", func(t *testing.T) {
		f := domain.DefaultFilter()
		f.ToggleCategory("Парфюмерия")
		f.ToggleBrand("LUMIÈRE")
		f.Price = domain.PriceRange{Min: 9000, Max: 10000}

		got := domain.FilterProducts(testProducts(), f)
		assert.Equal(t, []int{5}, ids(got))
	})

	t.Run("TwoCategoriesUnion", func(t *testing.T) {
		f := domain.DefaultFilter()
		f.ToggleCategory("Макияж")
		f.ToggleCategory("Парфюмерия")

		got := domain.FilterProducts(testProducts(), f)
		assert.Equal(t, []int{1, 3, 5, 6}, ids(got))
	})

	t.Run("OrderIsStable", func(t *testing.T) {
		f := domain.DefaultFilter()
		f.Price = domain.PriceRange{Min: 2400, Max: 8500}

		got := ids(domain.FilterProducts(testProducts(), f))
		assert.IsNonDecreasing(t, got)
	})
}

func TestFilterToggle(t *testing.T) {
	t.Run("ToggleTwiceRestores", func(t *testing.T) {
		f := domain.DefaultFilter()
		f.ToggleCategory("Макияж")
		f.ToggleCategory("Макияж")

		assert.Empty(t, f.Categories)
	})

	t.Run("NoDuplicates", func(t *testing.T) {
		f := domain.DefaultFilter()
		f.ToggleBrand("LUXE")
		f.ToggleBrand("LUMIÈRE")
		f.ToggleBrand("LUXE")
		f.ToggleBrand("LUXE")

		assert.Equal(t, []string{"LUMIÈRE", "LUXE"}, f.Brands)
	})
}

func TestFilterReset(t *testing.T) {
	f := domain.DefaultFilter()
	f.ToggleCategory("Макияж")
	f.ToggleBrand("LUXE")
	f.Price = domain.PriceRange{Min: 1000, Max: 3000}

	f.Reset()

	assert.Empty(t, f.Categories)
	assert.Empty(t, f.Brands)
	assert.Equal(t, domain.FullPriceRange(), f.Price)
}

func TestPriceRangeValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, domain.PriceRange{Min: 0, Max: 10000}.Validate())
		require.NoError(t, domain.PriceRange{Min: 500, Max: 500}.Validate())
	})

	t.Run("MinAboveMax", func(t *testing.T) {
		err := domain.PriceRange{Min: 5000, Max: 100}.Validate()
		assert.ErrorIs(t, err, domain.ErrInvalidPriceRange)
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := domain.PriceRange{Min: -1, Max: 100}.Validate()
		assert.ErrorIs(t, err, domain.ErrInvalidPriceRange)

		err = domain.PriceRange{Min: 0, Max: 10001}.Validate()
		assert.ErrorIs(t, err, domain.ErrInvalidPriceRange)
	})
}

func TestParseSection(t *testing.T) {
	t.Run("ValidTags", func(t *testing.T) {
		for _, s := range domain.Sections() {
			got, err := domain.ParseSection(string(s))
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("UnknownTag", func(t *testing.T) {
		_, err := domain.ParseSection("checkout")
		assert.ErrorIs(t, err, domain.ErrUnknownSection)
	})
}
