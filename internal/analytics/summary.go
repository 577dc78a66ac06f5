package analytics

import (
	"time"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// DateRange is the span of dates covered by a set of transactions
type DateRange struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// IsZero reports whether no date was observed
func (dr DateRange) IsZero() bool {
	return dr.Start.IsZero() && dr.End.IsZero()
}

// String returns the range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return dateutils.ToISODate(dr.Start) + "_" + dateutils.ToISODate(dr.End)
}

// Extend widens the range so that it contains t
func (dr DateRange) Extend(t time.Time) DateRange {
	if dr.Start.IsZero() || t.Before(dr.Start) {
		dr.Start = t
	}
	if dr.End.IsZero() || t.After(dr.End) {
		dr.End = t
	}
	return dr
}

// Summary holds the balance figures shown above the transaction list.
type Summary struct {
	Income   decimal.Decimal `json:"income" yaml:"income"`
	Expenses decimal.Decimal `json:"expenses" yaml:"expenses"`
	Balance  decimal.Decimal `json:"balance" yaml:"balance"`
	Count    int             `json:"count" yaml:"count"`
	Period   DateRange       `json:"period" yaml:"period"`
}

// Summarize totals income (positive amounts) and expenses (absolute negative amounts).
// Balance is income minus expenses.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Count:    len(txs),
	}

	for _, tx := range txs {
		switch {
		case tx.IsIncome():
			s.Income = s.Income.Add(tx.Amount)
		case tx.IsExpense():
			s.Expenses = s.Expenses.Add(tx.Amount.Abs())
		}
		if date, err := dateutils.ParseDateString(tx.Date); err == nil {
			s.Period = s.Period.Extend(date)
		}
	}

	s.Balance = s.Income.Sub(s.Expenses)
	return s
}
