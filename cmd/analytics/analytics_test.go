package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"fjacquet/fintrack/internal/apperror"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func expense(title string, amount string, category models.Category, date string) models.Transaction {
	return models.Transaction{
		ID:       title,
		Title:    title,
		Amount:   decimal.RequireFromString(amount),
		Type:     models.TypeExpense,
		Category: category,
		Date:     date,
	}
}

func transactions() []models.Transaction {
	return []models.Transaction{
		expense("Groceries", "-100", models.CategoryFood, "2024-01-10T10:00:00.000Z"),
		expense("Bus", "-50", models.CategoryTransportation, "2023-12-05T10:00:00.000Z"),
		expense("Dinner", "-25", models.CategoryFood, "2024-01-20T10:00:00.000Z"),
		{ID: "s", Title: "Salary", Amount: decimal.NewFromInt(1000), Type: models.TypeIncome, Category: models.CategorySalary, Date: "2024-01-01T10:00:00.000Z"},
	}
}

func mockStore(txs []models.Transaction) *store.MockStore {
	s := &store.MockStore{}
	s.On("LoadTransactions", mock.Anything).Return(txs, nil)
	s.On("LoadSettings", mock.Anything).Return(models.DefaultSettings(), nil)
	return s
}

func TestBuildView(t *testing.T) {
	view := BuildView(transactions(), "₹")

	require.Len(t, view.Categories, 2)
	food := view.Categories[0]
	assert.Equal(t, "Food", food.Category)
	assert.Equal(t, "125.00", food.Total)
	assert.Equal(t, 71.4, food.Percentage)
	assert.Equal(t, models.CategoryColor(models.CategoryFood), food.Color)
	assert.Equal(t, "Transportation", view.Categories[1].Category)
	assert.Equal(t, 28.6, view.Categories[1].Percentage)

	require.Len(t, view.Monthly, 2)
	assert.Equal(t, "Dec 2023", view.Monthly[0].Month)
	assert.Equal(t, "50.00", view.Monthly[0].Total)
	assert.Equal(t, "Jan 2024", view.Monthly[1].Month)
	assert.Equal(t, "125.00", view.Monthly[1].Total)
	assert.Zero(t, view.Skipped)
}

func TestBuildView_Empty(t *testing.T) {
	view := BuildView(nil, "₹")
	assert.NotNil(t, view.Categories)
	assert.NotNil(t, view.Monthly)
	assert.Empty(t, view.Categories)
	assert.Empty(t, view.Monthly)
}

func TestRun_Text(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), mockStore(transactions()), logging.NewMockLogger(), "text", &out))

	text := out.String()
	assert.Contains(t, text, "Expenses by category")
	assert.Contains(t, text, "₹125.00")
	assert.Contains(t, text, "71.4%")
	assert.Contains(t, text, "28.6%")
	assert.Less(t, strings.Index(text, "Dec 2023"), strings.Index(text, "Jan 2024"))
	assert.NotContains(t, text, "No data available")
}

func TestRun_TextMatchesStructuredOutput(t *testing.T) {
	var text, raw bytes.Buffer
	require.NoError(t, Run(context.Background(), mockStore(transactions()), logging.NewMockLogger(), "text", &text))
	require.NoError(t, Run(context.Background(), mockStore(transactions()), logging.NewMockLogger(), "json", &raw))

	var view View
	require.NoError(t, json.Unmarshal(raw.Bytes(), &view))
	lines := strings.Split(text.String(), "\n")

	for _, ct := range view.Categories {
		line := findLine(lines, "  "+ct.Category+" ")
		require.NotEmpty(t, line, ct.Category)
		assert.Contains(t, line, "₹"+ct.Total)
	}
	for _, m := range view.Monthly {
		line := findLine(lines, "  "+m.Month+" ")
		require.NotEmpty(t, line, m.Month)
		assert.Contains(t, line, "₹"+m.Total)
	}
}

func findLine(lines []string, prefix string) string {
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return l
		}
	}
	return ""
}

func TestRun_NoData(t *testing.T) {
	income := []models.Transaction{
		{ID: "s", Title: "Salary", Amount: decimal.NewFromInt(1000), Type: models.TypeIncome, Category: models.CategorySalary, Date: "2024-01-01"},
	}

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), mockStore(income), logging.NewMockLogger(), "text", &out))
	assert.Equal(t, 2, strings.Count(out.String(), "No data available"))
}

func TestRun_Structured(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, Run(context.Background(), mockStore(transactions()), logging.NewMockLogger(), "JSON", &out))

		var view View
		require.NoError(t, json.Unmarshal(out.Bytes(), &view))
		assert.Equal(t, "₹", view.Currency)
		assert.Len(t, view.Categories, 2)
		assert.Len(t, view.Monthly, 2)
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, Run(context.Background(), mockStore(transactions()), logging.NewMockLogger(), "yaml", &out))

		var view View
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &view))
		assert.Equal(t, "Food", view.Categories[0].Category)
		assert.Equal(t, "Jan 2024", view.Monthly[1].Month)
	})
}

func TestRun_SkippedDatesAreLogged(t *testing.T) {
	txs := append(transactions(), expense("Mystery", "-10", models.CategoryOther, "not a date"))
	logger := logging.NewMockLogger()

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), mockStore(txs), logger, "text", &out))

	warnings := logger.GetEntriesByLevel("WARN")
	require.Len(t, warnings, 1)
	assert.Equal(t, logging.FieldSkipped, warnings[0].Fields[0].Key)
	assert.Equal(t, 1, warnings[0].Fields[0].Value)
	assert.Contains(t, out.String(), "Other")
}

func TestRun_Errors(t *testing.T) {
	err := Run(context.Background(), &store.MockStore{}, logging.NewMockLogger(), "html", &bytes.Buffer{})
	var ferr *apperror.UnsupportedFormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "html", ferr.Format)

	s := &store.MockStore{}
	s.On("LoadTransactions", mock.Anything).Return(nil, errors.New("boom"))
	err = Run(context.Background(), s, logging.NewMockLogger(), "text", &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to load transactions")
}
