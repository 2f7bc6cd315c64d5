package money_test

import (
	"strings"
	"testing"

	"github.com/niksmo/elegance-storefront/pkg/money"
	"github.com/stretchr/testify/assert"
)

// normalize folds the locale-specific grouping spaces (regular,
// no-break, narrow no-break) into plain spaces for comparison.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\u00a0' || r == '\u202f' {
			return ' '
		}
		return r
	}, s)
}

func TestFormat(t *testing.T) {
	t.Run("Grouping", func(t *testing.T) {
		assert.Equal(t, "8 500 ₽", normalize(money.Format(8500)))
		assert.Equal(t, "12 750 ₽", normalize(money.Format(12750)))
	})

	t.Run("NoGroupingBelowThousand", func(t *testing.T) {
		assert.Equal(t, "840 ₽", normalize(money.Format(840)))
	})

	t.Run("DecimalComma", func(t *testing.T) {
		assert.Equal(t, "4 420,5 ₽", normalize(money.Format(4420.5)))
	})

	t.Run("TrailingZerosTrimmed", func(t *testing.T) {
		assert.Equal(t, "8 840 ₽", normalize(money.Format(8840.0)))
	})

	t.Run("Zero", func(t *testing.T) {
		assert.Equal(t, "0 ₽", normalize(money.Format(0)))
	})
}
