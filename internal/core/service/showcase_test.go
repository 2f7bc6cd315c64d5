package service_test

import (
	"testing"

	"github.com/niksmo/elegance-storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowcase(t *testing.T) {
	sc := service.NewShowcase(stubCatalog())

	t.Run("NewArrivals", func(t *testing.T) {
		ps := sc.NewArrivals()
		require.Len(t, ps, 1)
		assert.Equal(t, 1, ps[0].ID)
	})

	t.Run("Discounted", func(t *testing.T) {
		ps := sc.Discounted()
		require.Len(t, ps, 1)
		assert.Equal(t, 2, ps[0].ID)
	})
}
