package storefront

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency renders amount with the narrow symbol of unit, rounded to
// the currency's standard scale.
func FormatCurrency(unit currency.Unit, amount decimal.Decimal) string {
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprint(currency.NarrowSymbol(unit.Amount(amount.InexactFloat64())))
}
