package models

import (
	"testing"
	"time"

	"fjacquet/fintrack/internal/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionBuilder(t *testing.T) {
	builder := NewTransactionBuilder()

	assert.NotNil(t, builder)
	assert.Nil(t, builder.err)
	assert.Equal(t, TypeExpense, builder.tx.Type)
	assert.Equal(t, CategoryOther, builder.tx.Category)
	assert.True(t, builder.magnitude.IsZero())
}

func TestTransactionBuilder_Build(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		build      func() *TransactionBuilder
		wantAmount string
		wantErr    error
	}{
		{
			name: "expense gets negative sign",
			build: func() *TransactionBuilder {
				return NewTransactionBuilder().WithTitle("Lunch").WithAmount(decimal.NewFromInt(100)).WithType(TypeExpense)
			},
			wantAmount: "-100",
		},
		{
			name: "income keeps positive sign",
			build: func() *TransactionBuilder {
				return NewTransactionBuilder().WithTitle("Salary").WithAmount(decimal.NewFromInt(-200)).WithType(TypeIncome)
			},
			wantAmount: "200",
		},
		{
			name: "missing title",
			build: func() *TransactionBuilder {
				return NewTransactionBuilder().WithAmount(decimal.NewFromInt(10))
			},
			wantErr: apperror.ErrEmptyTitle,
		},
		{
			name: "missing amount",
			build: func() *TransactionBuilder {
				return NewTransactionBuilder().WithTitle("Nothing")
			},
			wantErr: apperror.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build()
			b.now = func() time.Time { return fixed }
			tx, err := b.Build()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantAmount).Equal(tx.Amount), "got %s", tx.Amount)
			assert.Equal(t, "2024-01-15T10:30:00.000Z", tx.Date)

			id, err := uuid.Parse(tx.ID)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), id.Version())
		})
	}
}

func TestTransactionBuilder_IDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tx, err := NewTransactionBuilder().WithTitle("x").WithAmount(decimal.NewFromInt(1)).Build()
		require.NoError(t, err)
		assert.False(t, seen[tx.ID])
		seen[tx.ID] = true
	}
}

func TestTransactionBuilder_ExplicitFields(t *testing.T) {
	tx, err := NewTransactionBuilder().
		WithID("abc").
		WithTitle("  Rent  ").
		WithAmount(decimal.NewFromInt(900)).
		WithCategory("rent").
		WithNotes("January").
		WithDate("2024-02-01").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "abc", tx.ID)
	assert.Equal(t, "Rent", tx.Title)
	assert.Equal(t, CategoryRent, tx.Category)
	assert.Equal(t, "January", tx.Notes)
	assert.Equal(t, "2024-02-01", tx.Date)
}

func TestTransactionBuilder_Errors(t *testing.T) {
	_, err := NewTransactionBuilder().WithDate("").WithTitle("x").Build()
	assert.ErrorContains(t, err, "date cannot be empty")

	_, err = NewTransactionBuilder().WithDate("yesterday").Build()
	assert.Error(t, err)

	_, err = NewTransactionBuilder().WithDateFromTime(time.Time{}).Build()
	assert.ErrorContains(t, err, "date cannot be zero")

	_, err = NewTransactionBuilder().WithType("transfer").Build()
	assert.ErrorContains(t, err, "unknown transaction type")
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.False(t, s.IsDarkMode)
	assert.Equal(t, "₹", s.Currency)
	assert.False(t, s.IsAuthEnabled)
	assert.NoError(t, s.Validate())

	s.Currency = " "
	assert.Error(t, s.Validate())
}

func TestMonthKey_Before(t *testing.T) {
	dec := MonthKey{Year: 2023, Month: time.December}
	jan := MonthKey{Year: 2024, Month: time.January}
	feb := MonthKey{Year: 2024, Month: time.February}

	assert.True(t, dec.Before(jan))
	assert.True(t, jan.Before(feb))
	assert.False(t, feb.Before(jan))
	assert.False(t, jan.Before(jan))
	assert.Equal(t, "2023-12", dec.String())
}

func TestTransactionBuilder_WithClock(t *testing.T) {
	fixed := time.Date(2024, time.March, 5, 8, 30, 0, 0, time.UTC)

	tx, err := NewTransactionBuilder().
		WithClock(func() time.Time { return fixed }).
		WithTitle("Bus").
		WithAmount(decimal.NewFromInt(3)).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T08:30:00.000Z", tx.Date)
}
