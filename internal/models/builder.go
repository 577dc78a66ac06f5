package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/fintrack/internal/dateutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionBuilder provides a fluent API for constructing transactions
type TransactionBuilder struct {
	tx        Transaction
	magnitude decimal.Decimal
	now       func() time.Time
	err       error
}

// NewTransactionBuilder creates a new TransactionBuilder with default values
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		tx: Transaction{
			Type:     TypeExpense,
			Category: CategoryOther,
		},
		magnitude: decimal.Zero,
		now:       time.Now,
	}
}

// WithID sets the transaction ID
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.ID = id
	return b
}

// WithTitle sets the title
func (b *TransactionBuilder) WithTitle(title string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Title = strings.TrimSpace(title)
	return b
}

// WithAmount sets the magnitude of the amount. The sign is derived from the type on Build.
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.magnitude = amount.Abs()
	return b
}

// WithType sets the transaction type
func (b *TransactionBuilder) WithType(t TransactionType) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if t != TypeIncome && t != TypeExpense {
		b.err = fmt.Errorf("unknown transaction type %q", t)
		return b
	}
	b.tx.Type = t
	return b
}

// WithCategory sets the category, falling back to Other for unknown values
func (b *TransactionBuilder) WithCategory(c Category) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Category = c.Normalize()
	return b
}

// WithNotes sets the optional notes
func (b *TransactionBuilder) WithNotes(notes string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Notes = notes
	return b
}

// WithDate sets the date from any supported textual form
func (b *TransactionBuilder) WithDate(dateStr string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if dateStr == "" {
		b.err = errors.New("date cannot be empty")
		return b
	}
	if _, err := dateutils.ParseDateString(dateStr); err != nil {
		b.err = err
		return b
	}
	b.tx.Date = dateStr
	return b
}

// WithDateFromTime sets the date from a time.Time
func (b *TransactionBuilder) WithDateFromTime(date time.Time) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if date.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.tx.Date = dateutils.FormatTimestamp(date)
	return b
}

// WithClock replaces the clock used to stamp transactions built without a date
func (b *TransactionBuilder) WithClock(now func() time.Time) *TransactionBuilder {
	if now != nil {
		b.now = now
	}
	return b
}

// Build mints the ID and timestamp when they were not provided, applies the sign and validates the result.
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, fmt.Errorf("builder error: %w", b.err)
	}

	tx := b.tx
	if tx.Type == TypeExpense {
		tx.Amount = b.magnitude.Neg()
	} else {
		tx.Amount = b.magnitude
	}

	if tx.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return Transaction{}, fmt.Errorf("failed to generate transaction id: %w", err)
		}
		tx.ID = id.String()
	}
	if tx.Date == "" {
		tx.Date = dateutils.FormatTimestamp(b.now())
	}

	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}
