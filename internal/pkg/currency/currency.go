// Package currency renders fees the way counsellors read them out.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is prefixed to every formatted amount.
const Symbol = "₹"

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format returns amount with Indian digit grouping, e.g. ₹1,12,000.
func Format(amount int64) string {
	return Symbol + Grouped(amount)
}

// Grouped returns amount with Indian digit grouping and no symbol.
func Grouped(amount int64) string {
	return printer.Sprintf("%d", amount)
}
