package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"fjacquet/fintrack/internal/apperror"
	"fjacquet/fintrack/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultDelimiter separates fields in the tabular export unless configured otherwise.
const DefaultDelimiter = ','

// TabularHeader lists the exported columns in order.
var TabularHeader = []string{"Date", "Title", "Category", "Type", "Amount", "Notes"}

type tabularRow struct {
	Date     string `csv:"Date"`
	Title    string `csv:"Title"`
	Category string `csv:"Category"`
	Type     string `csv:"Type"`
	Amount   string `csv:"Amount"`
	Notes    string `csv:"Notes"`
}

// ToTabularText renders a header row followed by one row per transaction, in input order.
// Fields containing the delimiter, a quote or a line break are quoted.
func ToTabularText(txs []models.Transaction, delimiter rune) (string, error) {
	var buf bytes.Buffer
	if err := WriteTabular(&buf, txs, delimiter); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTabular streams the tabular export to w.
func WriteTabular(w io.Writer, txs []models.Transaction, delimiter rune) error {
	rows := make([]tabularRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, tabularRow{
			Date:     tx.Date,
			Title:    tx.Title,
			Category: string(tx.Category),
			Type:     string(tx.Type),
			Amount:   tx.Amount.String(),
			Notes:    tx.Notes,
		})
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing tabular data: %w", err)
	}
	return nil
}

// ParseTabular reads rows written by WriteTabular back into transactions.
// IDs are not part of the export, so every row gets a new one.
func ParseTabular(r io.Reader, delimiter rune) ([]models.Transaction, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = delimiter

	var rows []tabularRow
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		return nil, fmt.Errorf("error reading tabular data: %w", err)
	}

	txs := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := row.toTransaction()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (r tabularRow) toTransaction() (models.Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return models.Transaction{}, &apperror.ParseError{Field: "amount", Value: r.Amount, Err: err}
	}

	var typ models.TransactionType
	if strings.TrimSpace(r.Type) == "" {
		typ = models.TypeIncome
		if amount.IsNegative() {
			typ = models.TypeExpense
		}
	} else if typ, err = models.ParseTransactionType(r.Type); err != nil {
		return models.Transaction{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to generate transaction id: %w", err)
	}

	return models.Transaction{
		ID:       id.String(),
		Title:    r.Title,
		Amount:   amount,
		Type:     typ,
		Category: models.ParseCategory(r.Category),
		Date:     r.Date,
		Notes:    r.Notes,
	}, nil
}
