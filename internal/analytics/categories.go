// Package analytics turns a list of transactions into the category breakdown,
// the monthly expense series and the balance summary. Every function is pure:
// inputs are never modified and every result is freshly allocated.
package analytics

import (
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotals groups expenses (negative amounts) by category and reports each group's
// absolute total and its share of all expenses. Income is ignored. Groups appear in the
// order their category first occurs in txs.
func CategoryTotals(txs []models.Transaction) []models.CategoryTotal {
	totals := make(map[models.Category]decimal.Decimal)
	order := make([]models.Category, 0)
	totalExpenses := decimal.Zero

	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		category := tx.Category.Normalize()
		amount := tx.Amount.Abs()

		if _, seen := totals[category]; !seen {
			order = append(order, category)
			totals[category] = decimal.Zero
		}
		totals[category] = totals[category].Add(amount)
		totalExpenses = totalExpenses.Add(amount)
	}

	result := make([]models.CategoryTotal, 0, len(order))
	for _, category := range order {
		total := totals[category]
		result = append(result, models.CategoryTotal{
			Category:   category,
			Total:      total,
			Percentage: percentage(total, totalExpenses),
			Color:      models.CategoryColor(category),
		})
	}
	return result
}

func percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
