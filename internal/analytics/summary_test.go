package analytics

import (
	"testing"
	"time"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	txs := []models.Transaction{
		tx("1000", models.CategorySalary, "2024-01-01"),
		tx("-250.5", models.CategoryRent, "2024-01-03"),
		tx("-49.5", models.CategoryFood, "2024-02-10"),
		tx("-5", models.CategoryFood, "bogus"),
	}

	s := Summarize(txs)

	assert.True(t, decimal.NewFromInt(1000).Equal(s.Income))
	assert.True(t, decimal.NewFromInt(305).Equal(s.Expenses))
	assert.True(t, decimal.NewFromInt(695).Equal(s.Balance))
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, "2024-01-01_2024-02-10", s.Period.String())
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Expenses.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.Zero(t, s.Count)
	assert.True(t, s.Period.IsZero())
	assert.Empty(t, s.Period.String())
}

func TestDateRange_Extend(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	dr := DateRange{}.Extend(feb).Extend(jan).Extend(mar)

	assert.Equal(t, jan, dr.Start)
	assert.Equal(t, mar, dr.End)
}
