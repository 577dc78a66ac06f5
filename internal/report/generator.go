// Package report renders transactions as delimited text, as a paginated document
// (plain text or PDF), as an XLSX workbook or as JSON.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/analytics"
	"fjacquet/fintrack/internal/apperror"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
)

// Supported report formats.
const (
	FormatCSV  = "csv"
	FormatTXT  = "txt"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// SupportedFormats lists every format GenerateReport accepts.
var SupportedFormats = []string{FormatCSV, FormatTXT, FormatPDF, FormatXLSX, FormatJSON}

// Document is the JSON form of a report.
type Document struct {
	Title        string                 `json:"title"`
	Summary      analytics.Summary      `json:"summary"`
	Categories   []models.CategoryTotal `json:"categories"`
	Monthly      []models.MonthlyTotal  `json:"monthly"`
	Transactions []models.Transaction   `json:"transactions"`
}

// ReportGenerator renders transactions in the supported formats.
type ReportGenerator struct {
	logger    logging.Logger
	layout    Layout
	delimiter rune
}

// NewReportGenerator creates a ReportGenerator using the given page layout and tabular delimiter.
func NewReportGenerator(logger logging.Logger, layout Layout, delimiter rune) *ReportGenerator {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &ReportGenerator{
		logger:    logger.WithField(logging.FieldComponent, "ReportGenerator"),
		layout:    layout,
		delimiter: delimiter,
	}
}

// Layout returns the page layout used for txt and pdf output.
func (g *ReportGenerator) Layout() Layout {
	return g.layout
}

// GenerateReport renders txs in the given format.
// Unknown formats yield an *apperror.UnsupportedFormatError.
func (g *ReportGenerator) GenerateReport(txs []models.Transaction, format string) ([]byte, error) {
	format = strings.ToLower(strings.TrimSpace(format))

	var (
		out []byte
		err error
	)
	switch format {
	case FormatCSV:
		out, err = g.generateCSV(txs)
	case FormatTXT:
		out, err = g.generateText(txs)
	case FormatPDF:
		out, err = g.generatePDF(txs)
	case FormatXLSX:
		out, err = g.generateXLSX(txs)
	case FormatJSON:
		out, err = g.generateJSON(txs)
	default:
		return nil, &apperror.UnsupportedFormatError{Format: format, Supported: SupportedFormats}
	}
	if err != nil {
		g.logger.WithError(err).Error("Failed to generate report", logging.Field{Key: logging.FieldFormat, Value: format})
		return nil, err
	}

	g.logger.Debug("Generated report",
		logging.Field{Key: logging.FieldFormat, Value: format},
		logging.Field{Key: logging.FieldCount, Value: len(txs)},
		logging.Field{Key: logging.FieldBytes, Value: len(out)})
	return out, nil
}

func (g *ReportGenerator) generateCSV(txs []models.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTabular(&buf, txs, g.delimiter); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) generateText(txs []models.Transaction) ([]byte, error) {
	if err := g.layout.Validate(); err != nil {
		return nil, err
	}
	text, err := WriteText(Paginate(txs, g.layout), g.layout.TextWidth)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func (g *ReportGenerator) generatePDF(txs []models.Transaction) ([]byte, error) {
	if err := g.layout.Validate(); err != nil {
		return nil, err
	}
	pages := Paginate(txs, g.layout)
	g.logger.Debug("Paginated transactions", logging.Field{Key: logging.FieldPages, Value: len(pages)})

	var buf bytes.Buffer
	if err := RenderPDF(pages, g.layout, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) generateXLSX(txs []models.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderXLSX(txs, analytics.CategoryTotals(txs), analytics.MonthlySeries(txs), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) generateJSON(txs []models.Transaction) ([]byte, error) {
	if txs == nil {
		txs = []models.Transaction{}
	}
	doc := Document{
		Title:        g.layout.Title,
		Summary:      analytics.Summarize(txs),
		Categories:   analytics.CategoryTotals(txs),
		Monthly:      analytics.MonthlySeries(txs),
		Transactions: txs,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}
