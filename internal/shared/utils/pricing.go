package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var arPrinter = message.NewPrinter(language.MustParse("es-AR"))

// FormatPriceARS formats a monthly price in Argentine pesos for display,
// e.g. 4800 -> "$4.800". Prices are whole currency units, not cents.
func FormatPriceARS(amount float64) string {
	return arPrinter.Sprintf("$%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// FormatAmountARS formats an arbitrary payment amount, keeping cents when
// present, e.g. 4800.50 -> "$4.800,50".
func FormatAmountARS(amount float64) string {
	return arPrinter.Sprintf("$%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}
