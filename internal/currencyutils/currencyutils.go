// Package currencyutils parses user-entered amounts and formats amounts for display.
package currencyutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	symbolsAndLetters = regexp.MustCompile(`[\p{Sc}\p{L}\s]+`)
	printer           = message.NewPrinter(language.English)
)

// ParseAmount parses a user-entered amount into a decimal value.
// It handles various formats like "1,234.56", "1.234,56", "1234.56", "1234,56", "₹ 250".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': empty amount", amountStr)
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts various currency string formats to a standard format that can be parsed by decimal.NewFromString
func StandardizeAmount(amountStr string) string {
	amountStr = symbolsAndLetters.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	hasComma := strings.Contains(amountStr, ",")
	hasDot := strings.Contains(amountStr, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// 1.234,56
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// 1,234.56
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case hasComma:
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) != 3 {
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case strings.Count(amountStr, ".") > 1:
		parts := strings.Split(amountStr, ".")
		if len(parts[len(parts)-1]) == 3 {
			// 1.234.567
			amountStr = strings.ReplaceAll(amountStr, ".", "")
		}
	}

	return amountStr
}

// FormatAmount renders an amount with two decimals, English digit grouping and
// the given currency. Symbols ("₹", "€") are prefixed directly, codes ("CHF") with a space.
func FormatAmount(amount decimal.Decimal, currency string) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	digits := groupDigits(rounded.Abs().StringFixed(2))

	switch {
	case currency == "":
		return sign + digits
	case isCode(currency):
		return sign + currency + " " + digits
	default:
		return sign + currency + digits
	}
}

// groupDigits inserts thousands separators into the integer part of a fixed-point string.
func groupDigits(fixed string) string {
	intPart, frac, hasFrac := strings.Cut(fixed, ".")
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		intPart = printer.Sprintf("%d", n)
	} else {
		var sb strings.Builder
		for i, r := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				sb.WriteByte(',')
			}
			sb.WriteRune(r)
		}
		intPart = sb.String()
	}
	if !hasFrac {
		return intPart
	}
	return intPart + "." + frac
}

// FormatSigned renders the absolute amount prefixed by "+ " for income and "- " for expenses,
// as shown in the transaction list.
func FormatSigned(amount decimal.Decimal, currency string) string {
	prefix := "- "
	if amount.IsPositive() {
		prefix = "+ "
	}
	return prefix + FormatAmount(amount.Abs(), currency)
}

func isCode(currency string) bool {
	for _, r := range currency {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
