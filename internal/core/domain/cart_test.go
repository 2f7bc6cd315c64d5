package domain_test

import (
	"testing"

	"github.com/niksmo/elegance-storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discountPtr(v int) *int { return &v }

func perfume() domain.Product {
	return domain.Product{
		ID: 1, Name: "Eau de Parfum Essence", Brand: "LUMIÈRE",
		Category: "Парфюмерия", Price: 8500, InStock: true,
	}
}

func cream() domain.Product {
	return domain.Product{
		ID: 2, Name: "Rose Gold Cream", Brand: "BELLE VIE",
		Category: "Уход за лицом", Price: 5200, InStock: true,
		Discount: discountPtr(15),
	}
}

func TestEffectivePrice(t *testing.T) {
	t.Run("NoDiscount", func(t *testing.T) {
		assert.InDelta(t, 8500, perfume().EffectivePrice(), 1e-9)
	})

	t.Run("WithDiscount", func(t *testing.T) {
		assert.InDelta(t, 5200*0.85, cream().EffectivePrice(), 1e-9)
	})

	t.Run("ZeroPercentStaysDistinctFromAbsent", func(t *testing.T) {
		p := perfume()
		p.Discount = discountPtr(0)
		assert.True(t, p.Discounted())
		assert.InDelta(t, 8500, p.EffectivePrice(), 1e-9)
	})
}

func TestCartAdd(t *testing.T) {
	t.Run("FirstAdd", func(t *testing.T) {
		var c domain.Cart
		c.Add(perfume())

		require.Equal(t, 1, c.Len())
		assert.Equal(t, 1, c.Items()[0].Quantity)
		assert.Equal(t, 1, c.ItemsCount())
		assert.InDelta(t, 8500, c.Total(), 1e-9)
	})

	t.Run("SameProductMergesByID", func(t *testing.T) {
		var c domain.Cart
		c.Add(cream())
		c.Add(cream())

		require.Equal(t, 1, c.Len())
		assert.Equal(t, 2, c.Items()[0].Quantity)
		assert.Equal(t, 2, c.ItemsCount())
		assert.InDelta(t, 8840, c.Total(), 1e-9)
	})

	t.Run("DistinctProducts", func(t *testing.T) {
		var c domain.Cart
		c.Add(perfume())
		c.Add(cream())

		require.Equal(t, 2, c.Len())
		assert.Equal(t, 2, c.ItemsCount())
		assert.InDelta(t, 8500+5200*0.85, c.Total(), 1e-9)
	})
}

func TestCartRemove(t *testing.T) {
	t.Run("Existing", func(t *testing.T) {
		var c domain.Cart
		c.Add(perfume())
		c.Remove(perfume().ID)

		assert.Equal(t, 0, c.Len())
		assert.InDelta(t, 0, c.Total(), 1e-9)
	})

	t.Run("AbsentIsNoOp", func(t *testing.T) {
		var c domain.Cart
		c.Add(perfume())
		c.Remove(42)

		assert.Equal(t, 1, c.Len())
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	t.Run("SetsQuantity", func(t *testing.T) {
		var c domain.Cart
		c.Add(cream())

		require.NoError(t, c.UpdateQuantity(cream().ID, 3))
		assert.Equal(t, 3, c.ItemsCount())
		assert.InDelta(t, 5200*0.85*3, c.Total(), 1e-9)
	})

	t.Run("ZeroBehavesAsRemove", func(t *testing.T) {
		var removed, updated domain.Cart
		removed.Add(perfume())
		updated.Add(perfume())

		removed.Remove(perfume().ID)
		require.NoError(t, updated.UpdateQuantity(perfume().ID, 0))

		assert.Equal(t, removed.Items(), updated.Items())
		assert.Equal(t, 0, updated.Len())
	})

	t.Run("NegativeRejected", func(t *testing.T) {
		var c domain.Cart
		c.Add(perfume())

		err := c.UpdateQuantity(perfume().ID, -1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
		assert.Equal(t, 1, c.ItemsCount())
	})

	t.Run("AbsentIDIsNoOp", func(t *testing.T) {
		var c domain.Cart
		require.NoError(t, c.UpdateQuantity(42, 5))
		assert.Equal(t, 0, c.Len())
	})
}

func TestCartCounts(t *testing.T) {
	var c domain.Cart
	c.Add(perfume())
	c.Add(cream())
	require.NoError(t, c.UpdateQuantity(cream().ID, 4))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 5, c.ItemsCount())
	assert.GreaterOrEqual(t, c.ItemsCount(), c.Len())
}
