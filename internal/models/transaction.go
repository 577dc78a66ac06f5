// Package models defines the transaction record and the derived aggregates built from it.
package models

import (
	"fmt"

	"fjacquet/fintrack/internal/apperror"
	"fjacquet/fintrack/internal/dateutils"

	"github.com/shopspring/decimal"
)

// TransactionType tells whether a transaction is money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType accepts "income" or "expense" in any case.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(normalizeKey(s)) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", &apperror.ParseError{Field: "type", Value: s, Err: apperror.ErrInvalidType}
	}
}

// Transaction is a single recorded income or expense event. Amount is signed:
// positive for income, negative for expenses.
type Transaction struct {
	ID       string          `json:"id" yaml:"id"`
	Title    string          `json:"title" yaml:"title"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Type     TransactionType `json:"type" yaml:"type"`
	Category Category        `json:"category" yaml:"category"`
	Date     string          `json:"date" yaml:"date"`
	Notes    string          `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// IsExpense reports whether the amount is negative. Aggregation relies on the sign, not on Type.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome reports whether the amount is positive.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// Validate checks the invariants of a freshly entered transaction.
func (t Transaction) Validate() error {
	if t.Title == "" {
		return &apperror.ValidationError{Field: "title", Reason: "title is required", Err: apperror.ErrEmptyTitle}
	}
	if t.Amount.IsZero() {
		return &apperror.ValidationError{Field: "amount", Reason: "amount must be non-zero", Err: apperror.ErrInvalidAmount}
	}
	switch t.Type {
	case TypeIncome:
		if !t.IsIncome() {
			return &apperror.ValidationError{Field: "amount", Reason: "income amount must be positive", Err: apperror.ErrInvalidAmount}
		}
	case TypeExpense:
		if !t.IsExpense() {
			return &apperror.ValidationError{Field: "amount", Reason: "expense amount must be negative", Err: apperror.ErrInvalidAmount}
		}
	default:
		return &apperror.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown type %q", t.Type), Err: apperror.ErrInvalidType}
	}
	if _, err := dateutils.ParseDateString(t.Date); err != nil {
		return &apperror.ValidationError{Field: "date", Reason: err.Error(), Err: err}
	}
	return nil
}
