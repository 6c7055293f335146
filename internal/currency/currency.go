package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Code identifies a supported display currency
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	JPY Code = "JPY"
	AUD Code = "AUD"
)

// Info describes a supported currency for display purposes
type Info struct {
	Code   Code
	Name   string
	Symbol string
}

var currencies = map[Code]Info{
	USD: {Code: USD, Name: "US Dollar", Symbol: "$"},
	EUR: {Code: EUR, Name: "Euro", Symbol: "€"},
	GBP: {Code: GBP, Name: "British Pound", Symbol: "£"},
	JPY: {Code: JPY, Name: "Japanese Yen", Symbol: "¥"},
	AUD: {Code: AUD, Name: "Australian Dollar", Symbol: "A$"},
}

// Exchange rates relative to USD (base currency). Static by design; no
// live-rate source.
var exchangeRates = map[Code]float64{
	USD: 1.0,
	EUR: 0.92,
	GBP: 0.79,
	JPY: 149.5,
	AUD: 1.53,
}

// Supported reports whether the code is in the fixed currency set
func Supported(code Code) bool {
	_, ok := currencies[code]
	return ok
}

// ConvertFromUSD converts an amount from USD to the target currency
func ConvertFromUSD(amountUSD float64, target Code) float64 {
	return amountUSD * exchangeRates[target]
}

// ConvertToUSD converts an amount from a currency back to USD
func ConvertToUSD(amount float64, from Code) float64 {
	return amount / exchangeRates[from]
}

// FormatPrice parses a decimal-string amount in USD and formats it in the
// target currency. Unparsable input formats as zero rather than failing.
func FormatPrice(amount string, code Code) string {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		parsed = 0
	}
	return FormatAmount(parsed, code)
}

// FormatAmount converts a USD amount and renders it with the currency
// symbol. The yen renders as a grouped integer with no decimals; every
// other currency uses two fixed decimals.
func FormatAmount(amountUSD float64, code Code) string {
	converted := ConvertFromUSD(amountUSD, code)
	symbol := currencies[code].Symbol

	if code == JPY {
		return symbol + groupDigits(int64(math.Round(converted)))
	}
	return fmt.Sprintf("%s%.2f", symbol, converted)
}

// Symbol returns the display symbol for a currency code
func Symbol(code Code) string {
	return currencies[code].Symbol
}

// Options returns the supported currencies in a stable order for
// dropdown rendering
func Options() []Info {
	return []Info{
		currencies[USD],
		currencies[EUR],
		currencies[GBP],
		currencies[JPY],
		currencies[AUD],
	}
}

// groupDigits renders n with comma thousands separators
func groupDigits(n int64) string {
	digits := strconv.FormatInt(n, 10)

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var grouped strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		grouped.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteString(",")
		}
		grouped.WriteString(digits[i : i+3])
	}

	return sign + grouped.String()
}
