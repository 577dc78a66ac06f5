package analytics

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// cryptoRandIntn returns a random int in [0, n) using crypto/rand
func cryptoRandIntn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(result.Int64())
}

func tx(amount string, category models.Category, date string) models.Transaction {
	a := decimal.RequireFromString(amount)
	typ := models.TypeIncome
	if a.IsNegative() {
		typ = models.TypeExpense
	}
	return models.Transaction{
		ID:       fmt.Sprintf("%s-%s-%s", amount, category, date),
		Title:    "t",
		Amount:   a,
		Type:     typ,
		Category: category,
		Date:     date,
	}
}

// generateRandomTransactions builds n transactions with mixed signs, categories
// (including empty and unknown ones) and dates between 2020 and 2025.
func generateRandomTransactions(n int) []models.Transaction {
	categories := append([]models.Category{"", "Pets"}, models.AllCategories...)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	txs := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		cents := int64(cryptoRandIntn(200000) - 100000)
		if cents == 0 {
			cents = -1
		}
		date := start.AddDate(0, 0, cryptoRandIntn(6*365))
		txs = append(txs, tx(
			decimal.New(cents, -2).String(),
			categories[cryptoRandIntn(len(categories))],
			date.Format(time.RFC3339),
		))
	}
	return txs
}

func expenseSum(txs []models.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if t.Amount.IsNegative() {
			sum = sum.Add(t.Amount.Abs())
		}
	}
	return sum
}
