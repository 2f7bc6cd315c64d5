package session_test

import (
	"testing"

	"github.com/niksmo/elegance-storefront/internal/adapter/catalog"
	"github.com/niksmo/elegance-storefront/internal/adapter/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store := session.NewStore(catalog.New(), nil)

	t.Run("CreatesOnFirstTouch", func(t *testing.T) {
		state := store.State("a")
		require.NotNil(t, state)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("ReturnsSameStateForSameID", func(t *testing.T) {
		first := store.State("b")
		require.NoError(t, first.AddToCart(1))

		second := store.State("b")
		assert.Equal(t, 1, second.Snapshot().CartCount)
	})

	t.Run("StatesAreIsolated", func(t *testing.T) {
		require.NoError(t, store.State("c").AddToCart(1))
		assert.Equal(t, 0, store.State("d").Snapshot().CartCount)
	})
}

func TestNewID(t *testing.T) {
	a := session.NewID()
	b := session.NewID()

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
