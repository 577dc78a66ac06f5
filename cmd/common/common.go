// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"
)

// NoDataMessage is printed in place of an empty breakdown.
const NoDataMessage = "No data available"

// Currency returns the currency from the stored settings, or the default when they cannot be read.
func Currency(ctx context.Context, s store.Store, logger logging.Logger) string {
	settings, err := s.LoadSettings(ctx)
	if err != nil {
		logger.WithError(err).Warn("Failed to load settings, using default currency")
		return models.DefaultCurrency
	}
	return settings.Currency
}

// SplitFormats turns "csv, PDF,csv" into ["csv", "pdf"].
func SplitFormats(value string) []string {
	seen := make(map[string]bool)
	var formats []string
	for _, f := range strings.Split(value, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	return formats
}

// TransactionLine renders one row of the transaction list.
func TransactionLine(tx models.Transaction, currency string) string {
	date := tx.Date
	if t, err := dateutils.ParseDateString(tx.Date); err == nil {
		date = dateutils.ToISODate(t)
	}
	line := fmt.Sprintf("%-10s  %-24s  %-14s  %s", date, tx.Title, tx.Category, currencyutils.FormatSigned(tx.Amount, currency))
	if tx.Notes != "" {
		line += "  (" + tx.Notes + ")"
	}
	return line
}
