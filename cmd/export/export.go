// Package export implements the command that writes reports in one or more formats.
package export

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/apperror"
	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/store"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseName names exported files unless --name is given.
const DefaultBaseName = "financial-report"

// Options are the values collected by the export command's flags.
type Options struct {
	Formats   []string
	OutputDir string
	BaseName  string
}

var (
	formats   string
	outputDir string
	baseName  string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions as CSV, text, PDF, XLSX or JSON",
	Long: `Export every stored transaction. Several formats can be given as a
comma-separated list; each one is written to <output-dir>/<name>.<format>.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		cfg := c.GetConfig()

		o := Options{
			Formats:   common.SplitFormats(strings.Join(cfg.Export.Formats, ",")),
			OutputDir: cfg.Export.Directory,
			BaseName:  baseName,
		}
		if cmd.Flags().Changed("format") {
			o.Formats = common.SplitFormats(formats)
		}
		if cmd.Flags().Changed("output-dir") {
			o.OutputDir = outputDir
		}

		_, err = Run(cmd.Context(), c.GetStore(), c.GetReportGenerator(), c.GetLogger(), o, cmd.OutOrStdout())
		return err
	},
}

func init() {
	Cmd.Flags().StringVarP(&formats, "format", "f", "csv", "Comma-separated formats (csv, txt, pdf, xlsx, json)")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory the reports are written to")
	Cmd.Flags().StringVarP(&baseName, "name", "n", DefaultBaseName, "Base file name of the reports")
}

// Run renders every requested format concurrently and writes one file per format.
// It returns the written paths in the order the formats were given.
func Run(ctx context.Context, s store.Store, gen *report.ReportGenerator, logger logging.Logger, o Options, out io.Writer) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(o.Formats) == 0 {
		return nil, fmt.Errorf("no export format given")
	}
	for _, f := range o.Formats {
		if !slices.Contains(report.SupportedFormats, f) {
			return nil, &apperror.UnsupportedFormatError{Format: f, Supported: report.SupportedFormats}
		}
	}

	txs, err := s.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if err := fileutils.EnsureDirectoryExists(o.OutputDir); err != nil {
		return nil, err
	}

	paths := make([]string, len(o.Formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range o.Formats {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := gen.GenerateReport(txs, f)
			if err != nil {
				return fmt.Errorf("%s export failed: %w", f, err)
			}
			path := fileutils.ReportPath(o.OutputDir, o.BaseName, f)
			if err := fileutils.WriteFile(path, data, fileutils.PermissionReportFile); err != nil {
				return fmt.Errorf("%s export failed: %w", f, err)
			}
			logger.Info("Exported report",
				logging.Field{Key: logging.FieldFormat, Value: f},
				logging.Field{Key: logging.FieldOutputFile, Value: path},
				logging.Field{Key: logging.FieldBytes, Value: len(data)})
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, p := range paths {
		fmt.Fprintf(out, "Wrote %s\n", p)
	}
	return paths, nil
}
