package report

import (
	"fmt"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "1", Title: "Salary", Amount: decimal.NewFromInt(200), Type: models.TypeIncome, Category: models.CategorySalary, Date: "2024-01-01"},
		{ID: "2", Title: "Lunch", Amount: decimal.NewFromInt(-100), Type: models.TypeExpense, Category: models.CategoryFood, Date: "2024-01-15", Notes: "team"},
		{ID: "3", Title: "Coffee", Amount: decimal.RequireFromString("-12.5"), Type: models.TypeExpense, Category: models.CategoryFood, Date: "2023-12-01"},
	}
}

func manyTransactions(n int) []models.Transaction {
	txs := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		txs = append(txs, models.Transaction{
			ID:       fmt.Sprintf("%d", i),
			Title:    fmt.Sprintf("Item %d", i),
			Amount:   decimal.NewFromInt(int64(-(i + 1))),
			Type:     models.TypeExpense,
			Category: models.CategoryShopping,
			Date:     "2024-02-10",
		})
	}
	return txs
}
