package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the expense total of one category within a breakdown.
type CategoryTotal struct {
	Category   Category        `json:"category" yaml:"category"`
	Total      decimal.Decimal `json:"total" yaml:"total"`
	Percentage float64         `json:"percentage" yaml:"percentage"`
	Color      string          `json:"color" yaml:"color"`
}

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

// Before orders keys chronologically.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// MonthlyBucket accumulates the expense total of one calendar month.
type MonthlyBucket struct {
	Key   MonthKey
	Total decimal.Decimal
}

// MonthlyTotal is one point of the monthly series, labelled for display.
type MonthlyTotal struct {
	Label string          `json:"label" yaml:"label"`
	Total decimal.Decimal `json:"total" yaml:"total"`
}
