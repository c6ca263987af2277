// Package currency renders monetary amounts for display labels.
// The formatter is deliberately small: a symbol table for the currencies the
// product actually sells in, a thousands separator, and a compact form for
// chart axes. Anything not in the table falls back to the raw ISO 4217 code.
package currency

import (
	"fmt"
	"strconv"
)

// symbols maps the explicitly supported ISO 4217 codes to their symbols.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"NGN": "₦",
}

// Symbol returns the display symbol for a currency code, or the code itself
// when no symbol is known.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

// Format renders an amount with its currency symbol, thousands separators
// and two decimal places, e.g. Format(1234.5, "USD") == "$1,234.50".
// Unknown currencies render with the code as a prefix: "IDR 1,234.50".
func Format(amount float64, code string) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := fmt.Sprintf("%.2f", amount)
	intPart := whole[:len(whole)-3]
	fracPart := whole[len(whole)-2:]

	formatted := addThousandsSeparator(intPart) + "." + fracPart

	symbol, known := symbols[code]
	var result string
	if known {
		result = symbol + formatted
	} else {
		result = code + " " + formatted
	}

	if negative {
		result = "-" + result
	}
	return result
}

// FormatCompact renders an amount in abbreviated form for tight labels:
// 1_500_000 -> "$1.5M", 45_000 -> "$45K", 320 -> "$320".
func FormatCompact(value float64, code string) string {
	symbol := Symbol(code)

	switch {
	case value >= 1_000_000:
		return symbol + strconv.FormatFloat(value/1_000_000, 'f', 1, 64) + "M"
	case value >= 1_000:
		return symbol + strconv.FormatFloat(value/1_000, 'f', 0, 64) + "K"
	default:
		return symbol + strconv.FormatFloat(value, 'f', 0, 64)
	}
}

// addThousandsSeparator inserts commas into a digit string.
func addThousandsSeparator(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = ','
			j--
		}
	}

	return string(result)
}
