// Package list implements the command that shows the balance and the transaction list.
package list

import (
	"context"
	"fmt"
	"io"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/analytics"
	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/store"

	"github.com/spf13/cobra"
)

var limit int

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "Show the balance and the recorded transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c.GetStore(), c.GetLogger(), limit, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Show only the most recent N transactions (0 shows all)")
}

// Run prints the balance card followed by the transactions, most recently added first.
func Run(ctx context.Context, s store.Store, logger logging.Logger, limit int, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	txs, err := s.LoadTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	currency := common.Currency(ctx, s, logger)
	summary := analytics.Summarize(txs)

	fmt.Fprintf(out, "Balance:  %s\n", currencyutils.FormatAmount(summary.Balance, currency))
	fmt.Fprintf(out, "Income:   %s\n", currencyutils.FormatAmount(summary.Income, currency))
	fmt.Fprintf(out, "Expenses: %s\n", currencyutils.FormatAmount(summary.Expenses, currency))
	if period := summary.Period.String(); period != "" {
		fmt.Fprintf(out, "Period:   %s\n", period)
	}
	fmt.Fprintln(out)

	if len(txs) == 0 {
		fmt.Fprintln(out, "No transactions yet")
		return nil
	}

	shown := 0
	for i := len(txs) - 1; i >= 0; i-- {
		if limit > 0 && shown == limit {
			break
		}
		fmt.Fprintln(out, common.TransactionLine(txs[i], currency))
		shown++
	}

	logger.Debug("Listed transactions",
		logging.Field{Key: logging.FieldCount, Value: shown})
	return nil
}
