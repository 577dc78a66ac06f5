// Package store persists the transaction list and the settings record as two
// independently keyed JSON blobs, either as files or in SQLite.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fjacquet/fintrack/internal/apperror"
	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
)

// Keys of the persisted blobs.
const (
	TransactionsKey = "@finance_app_transactions"
	SettingsKey     = "@finance_app_settings"
)

// errNotFound is returned by backends when a key has never been written.
var errNotFound = errors.New("key not found")

// Store is the storage collaborator. Loading a key that was never written
// yields an empty list or the default settings, not an error.
type Store interface {
	LoadTransactions(ctx context.Context) ([]models.Transaction, error)
	SaveTransactions(ctx context.Context, txs []models.Transaction) error
	AppendTransaction(ctx context.Context, tx models.Transaction) error
	LoadSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error
	Close() error
}

// New opens the store selected by cfg.Storage.Driver.
func New(cfg *config.Config, logger logging.Logger) (Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		return NewFileStore(cfg.Storage.Path, logger)
	case config.DriverSQLite:
		return NewSQLiteStore(cfg.Storage.Path, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// backend reads and writes raw blobs. Both stores share the JSON handling below.
type backend interface {
	get(ctx context.Context, key string) ([]byte, error)
	put(ctx context.Context, key string, value []byte) error
}

func loadTransactions(ctx context.Context, b backend) ([]models.Transaction, error) {
	raw, err := b.get(ctx, TransactionsKey)
	if errors.Is(err, errNotFound) {
		return []models.Transaction{}, nil
	}
	if err != nil {
		return nil, &apperror.StorageError{Op: "load", Key: TransactionsKey, Err: err}
	}
	return decodeTransactions(raw)
}

func decodeTransactions(raw []byte) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	if len(raw) == 0 {
		return txs, nil
	}
	if err := json.Unmarshal(raw, &txs); err != nil {
		return nil, &apperror.StorageError{Op: "decode", Key: TransactionsKey, Err: err}
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

func saveTransactions(ctx context.Context, b backend, txs []models.Transaction) error {
	if txs == nil {
		txs = []models.Transaction{}
	}
	raw, err := json.Marshal(txs)
	if err != nil {
		return &apperror.StorageError{Op: "encode", Key: TransactionsKey, Err: err}
	}
	if err := b.put(ctx, TransactionsKey, raw); err != nil {
		return &apperror.StorageError{Op: "save", Key: TransactionsKey, Err: err}
	}
	return nil
}

func loadSettings(ctx context.Context, b backend) (models.Settings, error) {
	raw, err := b.get(ctx, SettingsKey)
	if errors.Is(err, errNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, &apperror.StorageError{Op: "load", Key: SettingsKey, Err: err}
	}

	// Fields missing from the blob keep their defaults.
	settings := models.DefaultSettings()
	if len(raw) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.Settings{}, &apperror.StorageError{Op: "decode", Key: SettingsKey, Err: err}
	}
	return settings, nil
}

func saveSettings(ctx context.Context, b backend, settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return &apperror.StorageError{Op: "encode", Key: SettingsKey, Err: err}
	}
	if err := b.put(ctx, SettingsKey, raw); err != nil {
		return &apperror.StorageError{Op: "save", Key: SettingsKey, Err: err}
	}
	return nil
}
