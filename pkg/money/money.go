// Package money formats prices for display the way the storefront
// shows them: ru-RU digit grouping with a ruble sign, e.g. "8 500 ₽".
// Computations stay exact, only presentation lives here.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Russian)

// Format renders the amount with ru-RU grouping (non-breaking spaces)
// and at most two fraction digits, followed by the ruble sign.
func Format(amount float64) string {
	return printer.Sprintf("%v ₽", number.Decimal(
		amount,
		number.MaxFractionDigits(2),
		number.MinFractionDigits(0),
	))
}
