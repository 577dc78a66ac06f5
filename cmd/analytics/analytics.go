// Package analytics implements the command that shows spending by category and by month.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	core "fjacquet/fintrack/internal/analytics"
	"fjacquet/fintrack/internal/apperror"
	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var format string

// Cmd represents the analytics command
var Cmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show expenses by category and by month",
	Long: `Show the expense breakdown by category, with each category's share of total
expenses, followed by the monthly expense overview in chronological order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c.GetStore(), c.GetLogger(), format, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", FormatText, "Output format (text, json, yaml)")
}

// CategoryView is one line of the category breakdown.
type CategoryView struct {
	Category   string  `json:"category" yaml:"category"`
	Total      string  `json:"total" yaml:"total"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
	Color      string  `json:"color" yaml:"color"`

	amount decimal.Decimal
}

// MonthView is one point of the monthly overview.
type MonthView struct {
	Month string `json:"month" yaml:"month"`
	Total string `json:"total" yaml:"total"`

	amount decimal.Decimal
}

// View is the structured output of the analytics command.
type View struct {
	Currency   string         `json:"currency" yaml:"currency"`
	Categories []CategoryView `json:"categories" yaml:"categories"`
	Monthly    []MonthView    `json:"monthly" yaml:"monthly"`
	Skipped    int            `json:"skipped" yaml:"skipped"`
}

// BuildView computes both breakdowns. Percentages are rounded to one decimal.
func BuildView(txs []models.Transaction, currency string) View {
	view := View{
		Currency:   currency,
		Categories: []CategoryView{},
		Monthly:    []MonthView{},
	}

	for _, ct := range core.CategoryTotals(txs) {
		view.Categories = append(view.Categories, CategoryView{
			Category:   string(ct.Category),
			Total:      ct.Total.StringFixed(2),
			Percentage: math.Round(ct.Percentage*10) / 10,
			Color:      ct.Color,
			amount:     ct.Total,
		})
	}

	buckets, skipped := core.MonthlyBuckets(txs)
	for _, b := range buckets {
		view.Monthly = append(view.Monthly, MonthView{
			Month:  core.MonthLabel(b.Key),
			Total:  b.Total.StringFixed(2),
			amount: b.Total,
		})
	}
	view.Skipped = skipped
	return view
}

// Run loads the transactions and prints the breakdowns in the requested format.
func Run(ctx context.Context, s store.Store, logger logging.Logger, format string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return &apperror.UnsupportedFormatError{Format: format, Supported: []string{FormatText, FormatJSON, FormatYAML}}
	}

	txs, err := s.LoadTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	view := BuildView(txs, common.Currency(ctx, s, logger))
	if view.Skipped > 0 {
		logger.Warn("Transactions with unparsable dates left out of the monthly overview",
			logging.Field{Key: logging.FieldSkipped, Value: view.Skipped})
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(out, view)
	}
}

func writeText(out io.Writer, view View) error {
	var sb strings.Builder

	sb.WriteString("Expenses by category\n")
	if len(view.Categories) == 0 {
		sb.WriteString(common.NoDataMessage + "\n")
	}
	for _, ct := range view.Categories {
		fmt.Fprintf(&sb, "  %-16s %14s  %5.1f%%\n",
			ct.Category, currencyutils.FormatAmount(ct.amount, view.Currency), ct.Percentage)
	}

	sb.WriteString("\nMonthly overview\n")
	if len(view.Monthly) == 0 {
		sb.WriteString(common.NoDataMessage + "\n")
	}
	for _, m := range view.Monthly {
		fmt.Fprintf(&sb, "  %-10s %14s\n", m.Month, currencyutils.FormatAmount(m.amount, view.Currency))
	}

	_, err := io.WriteString(out, sb.String())
	return err
}
