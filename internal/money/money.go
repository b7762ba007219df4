// Package money formats catalog amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// Amount renders whole dollars with digit grouping, e.g. "$1,950".
func Amount(dollars int) string {
	return message.NewPrinter(language.English).Sprintf("$%d", dollars)
}

// CAD renders whole dollars with the currency suffix, e.g. "$1,950 CAD".
func CAD(dollars int) string {
	return Amount(dollars) + " " + domain.Currency
}
