// Package importer implements the command that loads transactions from a tabular export.
package importer

import (
	"context"
	"fmt"
	"io"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/store"

	"github.com/spf13/cobra"
)

// Options are the values collected by the import command's flags.
type Options struct {
	Input     string
	Delimiter rune
	Replace   bool
}

var (
	input   string
	replace bool
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from a CSV file written by export",
	Long: `Import transactions from a delimited file with the columns
Date, Title, Category, Type and Amount (Notes optional). Rows that fail
validation are skipped and reported. Imported rows are appended unless --replace is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		o := Options{Input: input, Delimiter: c.GetConfig().Delimiter(), Replace: replace}
		_, err = Run(cmd.Context(), c.GetStore(), c.GetLogger(), o, cmd.OutOrStdout())
		return err
	},
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Input file")
	Cmd.Flags().BoolVar(&replace, "replace", false, "Replace the stored transactions instead of appending")
	_ = Cmd.MarkFlagRequired("input")
}

// Run parses o.Input, keeps the rows that validate and saves them. It returns the number of imported rows.
func Run(ctx context.Context, s store.Store, logger logging.Logger, o Options, out io.Writer) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	f, err := fileutils.OpenFile(o.Input)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	delimiter := o.Delimiter
	if delimiter == 0 {
		delimiter = report.DefaultDelimiter
	}
	parsed, err := report.ParseTabular(f, delimiter)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", o.Input, err)
	}

	valid := make([]models.Transaction, 0, len(parsed))
	for i, tx := range parsed {
		if err := tx.Validate(); err != nil {
			logger.WithError(err).Warn("Skipping invalid row",
				logging.Field{Key: "row", Value: i + 1},
				logging.Field{Key: logging.FieldTransactionID, Value: tx.ID})
			continue
		}
		valid = append(valid, tx)
	}

	txs := valid
	if !o.Replace {
		existing, err := s.LoadTransactions(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to load transactions: %w", err)
		}
		txs = append(existing, valid...)
	}
	if err := s.SaveTransactions(ctx, txs); err != nil {
		return 0, fmt.Errorf("failed to save transactions: %w", err)
	}

	skipped := len(parsed) - len(valid)
	logger.Info("Imported transactions",
		logging.Field{Key: logging.FieldCount, Value: len(valid)},
		logging.Field{Key: logging.FieldSkipped, Value: skipped})
	fmt.Fprintf(out, "Imported %d transactions (%d skipped)\n", len(valid), skipped)
	return len(valid), nil
}
