package analytics

import (
	"context"
	"testing"

	"fjacquet/fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentAggregation(t *testing.T) {
	txs := generateRandomTransactions(200)
	wantTotals := CategoryTotals(txs)
	wantSeries := MonthlySeries(txs)

	const workers = 32
	gotTotals := make([][]models.CategoryTotal, workers)
	gotSeries := make([][]models.MonthlyTotal, workers)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			gotTotals[i] = CategoryTotals(txs)
			gotSeries[i] = MonthlySeries(txs)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 0; i < workers; i++ {
		assert.Equal(t, wantTotals, gotTotals[i])
		assert.Equal(t, wantSeries, gotSeries[i])
	}
}
