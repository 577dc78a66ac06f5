// Package add implements the command that records a new transaction.
package add

import (
	"context"
	"fmt"
	"io"
	"time"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"

	"github.com/spf13/cobra"
)

// Options are the values collected by the add command's flags.
type Options struct {
	Title    string
	Amount   string
	Type     string
	Category string
	Notes    string
	Date     string
}

var opts Options

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense transaction",
	Long: `Record a transaction. The amount is entered as a positive number;
expenses are stored with a negative sign. Unknown categories are stored as Other.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		_, err = Run(cmd.Context(), c.GetStore(), c.GetLogger(), opts, time.Now, cmd.OutOrStdout())
		return err
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Transaction title")
	Cmd.Flags().StringVarP(&opts.Amount, "amount", "a", "", "Amount, e.g. 1,234.50")
	Cmd.Flags().StringVar(&opts.Type, "type", string(models.TypeExpense), "income or expense")
	Cmd.Flags().StringVarP(&opts.Category, "category", "c", string(models.CategoryOther), "Category")
	Cmd.Flags().StringVarP(&opts.Notes, "notes", "n", "", "Optional notes")
	Cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Date (defaults to now)")
	_ = Cmd.MarkFlagRequired("title")
	_ = Cmd.MarkFlagRequired("amount")
}

// Run builds the transaction described by o, appends it to the store and prints a confirmation.
func Run(ctx context.Context, s store.Store, logger logging.Logger, o Options, now func() time.Time, out io.Writer) (models.Transaction, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	amount, err := currencyutils.ParseAmount(o.Amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}
	txType, err := models.ParseTransactionType(o.Type)
	if err != nil {
		return models.Transaction{}, err
	}

	builder := models.NewTransactionBuilder().
		WithClock(now).
		WithTitle(o.Title).
		WithAmount(amount).
		WithType(txType).
		WithCategory(models.ParseCategory(o.Category)).
		WithNotes(o.Notes)
	if o.Date != "" {
		builder = builder.WithDate(o.Date)
	}

	tx, err := builder.Build()
	if err != nil {
		return models.Transaction{}, err
	}

	if err := s.AppendTransaction(ctx, tx); err != nil {
		logger.WithError(err).Error("Failed to save transaction",
			logging.Field{Key: logging.FieldTransactionID, Value: tx.ID})
		return models.Transaction{}, fmt.Errorf("failed to save transaction: %w", err)
	}

	currency := common.Currency(ctx, s, logger)
	fmt.Fprintf(out, "Added %s  %s  [%s]\n", tx.Title, currencyutils.FormatSigned(tx.Amount, currency), tx.Category)
	return tx, nil
}
