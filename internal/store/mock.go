package store

import (
	"context"

	"fjacquet/fintrack/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of Store for command tests.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	txs, _ := args.Get(0).([]models.Transaction)
	return txs, args.Error(1)
}

func (m *MockStore) SaveTransactions(ctx context.Context, txs []models.Transaction) error {
	return m.Called(ctx, txs).Error(0)
}

func (m *MockStore) AppendTransaction(ctx context.Context, tx models.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockStore) LoadSettings(ctx context.Context) (models.Settings, error) {
	args := m.Called(ctx)
	settings, _ := args.Get(0).(models.Settings)
	return settings, args.Error(1)
}

func (m *MockStore) SaveSettings(ctx context.Context, settings models.Settings) error {
	return m.Called(ctx, settings).Error(0)
}

func (m *MockStore) Close() error {
	return m.Called().Error(0)
}
