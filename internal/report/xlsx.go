package report

import (
	"fmt"
	"io"

	"fjacquet/fintrack/internal/models"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SheetTransactions = "Transactions"
	SheetCategories   = "Categories"
	SheetMonthly      = "Monthly"
)

// RenderXLSX writes a workbook with the transaction rows, the category breakdown and the monthly series.
func RenderXLSX(txs []models.Transaction, categories []models.CategoryTotal, series []models.MonthlyTotal, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetTransactions); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetCategories); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetCategories, err)
	}
	if _, err := f.NewSheet(SheetMonthly); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetMonthly, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]interface{}, 0, len(TabularHeader))
	for _, h := range TabularHeader {
		header = append(header, h)
	}
	if err := writeSheet(f, SheetTransactions, header, len(txs), func(i int) []interface{} {
		tx := txs[i]
		return []interface{}{tx.Date, tx.Title, string(tx.Category), string(tx.Type), tx.Amount.InexactFloat64(), tx.Notes}
	}); err != nil {
		return err
	}

	if err := writeSheet(f, SheetCategories, []interface{}{"Category", "Total", "Percentage", "Color"}, len(categories), func(i int) []interface{} {
		ct := categories[i]
		return []interface{}{string(ct.Category), ct.Total.InexactFloat64(), ct.Percentage, ct.Color}
	}); err != nil {
		return err
	}

	if err := writeSheet(f, SheetMonthly, []interface{}{"Month", "Total"}, len(series), func(i int) []interface{} {
		return []interface{}{series[i].Label, series[i].Total.InexactFloat64()}
	}); err != nil {
		return err
	}

	for _, sheet := range []string{SheetTransactions, SheetCategories, SheetMonthly} {
		if err := f.SetCellStyle(sheet, "A1", "F1", headerStyle); err != nil {
			return fmt.Errorf("failed to style sheet %s: %w", sheet, err)
		}
	}
	if err := f.SetColWidth(SheetTransactions, "A", "B", 28); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, n int, row func(i int) []interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", sheet, err)
	}
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row(i)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
