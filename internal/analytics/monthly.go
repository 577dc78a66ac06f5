package analytics

import (
	"fmt"
	"sort"
	"time"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthLabel renders a month key as "Jan 2024".
func MonthLabel(key models.MonthKey) string {
	name := "???"
	if key.Month >= time.January && key.Month <= time.December {
		name = monthAbbreviations[key.Month-1]
	}
	return fmt.Sprintf("%s %d", name, key.Year)
}

// MonthlyBuckets sums absolute expense amounts per calendar month, sorted by (year, month).
// Expenses whose date cannot be parsed are left out; their count is returned as skipped.
func MonthlyBuckets(txs []models.Transaction) (buckets []models.MonthlyBucket, skipped int) {
	totals := make(map[models.MonthKey]decimal.Decimal)

	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		date, err := dateutils.ParseDateString(tx.Date)
		if err != nil {
			skipped++
			continue
		}
		key := models.MonthKey{Year: date.Year(), Month: date.Month()}
		totals[key] = totals[key].Add(tx.Amount.Abs())
	}

	buckets = make([]models.MonthlyBucket, 0, len(totals))
	for key, total := range totals {
		buckets = append(buckets, models.MonthlyBucket{Key: key, Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key.Before(buckets[j].Key)
	})
	return buckets, skipped
}

// MonthlySeries returns the labelled monthly expense totals in chronological order.
// The order comes from the numeric month key, never from the label text.
func MonthlySeries(txs []models.Transaction) []models.MonthlyTotal {
	buckets, _ := MonthlyBuckets(txs)

	series := make([]models.MonthlyTotal, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, models.MonthlyTotal{
			Label: MonthLabel(b.Key),
			Total: b.Total,
		})
	}
	return series
}
