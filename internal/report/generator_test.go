package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"fjacquet/fintrack/internal/apperror"
	"fjacquet/fintrack/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() (*ReportGenerator, *logging.MockLogger) {
	logger := logging.NewMockLogger()
	return NewReportGenerator(logger, DefaultLayout(), ','), logger
}

func TestReportGenerator_GenerateReport_CSV(t *testing.T) {
	generator, _ := newTestGenerator()

	out, err := generator.GenerateReport(sampleTransactions(), "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "Date,Title,Category,Type,Amount,Notes\n"))
	assert.Equal(t, 4, strings.Count(string(out), "\n"))
}

func TestReportGenerator_GenerateReport_TXT(t *testing.T) {
	generator, _ := newTestGenerator()

	out, err := generator.GenerateReport(sampleTransactions(), " TXT ")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Financial Report\n")
	assert.Contains(t, string(out), "2024-01-15 - Lunch")
	assert.Contains(t, string(out), "-100\n")
}

func TestReportGenerator_GenerateReport_JSON(t *testing.T) {
	generator, logger := newTestGenerator()

	out, err := generator.GenerateReport(sampleTransactions(), "json")
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "Financial Report", doc.Title)
	assert.Len(t, doc.Transactions, 3)
	require.Len(t, doc.Categories, 1)
	assert.Equal(t, "112.5", doc.Categories[0].Total.String())
	require.Len(t, doc.Monthly, 2)
	assert.Equal(t, "Dec 2023", doc.Monthly[0].Label)
	assert.Equal(t, "87.5", doc.Summary.Balance.String())

	assert.True(t, logger.HasEntry("DEBUG", "Generated report"))
}

func TestReportGenerator_GenerateReport_JSONEmpty(t *testing.T) {
	generator, _ := newTestGenerator()

	out, err := generator.GenerateReport(nil, "json")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"transactions": []`)
	assert.Contains(t, string(out), `"categories": []`)
}

func TestReportGenerator_GenerateReport_Binary(t *testing.T) {
	generator, _ := newTestGenerator()

	pdf, err := generator.GenerateReport(sampleTransactions(), "pdf")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	xlsx, err := generator.GenerateReport(sampleTransactions(), "xlsx")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(xlsx, []byte("PK")))
}

func TestReportGenerator_GenerateReport_UnsupportedFormat(t *testing.T) {
	generator, _ := newTestGenerator()

	out, err := generator.GenerateReport(sampleTransactions(), "xml")
	assert.Nil(t, out)

	var formatErr *apperror.UnsupportedFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "xml", formatErr.Format)
	assert.Equal(t, SupportedFormats, formatErr.Supported)
}

func TestReportGenerator_InvalidLayout(t *testing.T) {
	layout := DefaultLayout()
	layout.LineHeight = 0
	logger := logging.NewMockLogger()
	generator := NewReportGenerator(logger, layout, 0)

	_, err := generator.GenerateReport(sampleTransactions(), "pdf")
	assert.Error(t, err)
	assert.Len(t, logger.GetEntriesByLevel("ERROR"), 1)

	_, err = generator.GenerateReport(sampleTransactions(), "csv")
	assert.NoError(t, err, "tabular output does not depend on the layout")
}
