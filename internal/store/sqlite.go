package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the blobs in a key/value table.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
}

// NewSQLiteStore opens (or creates) the database at dbPath and migrates it.
func NewSQLiteStore(dbPath string, logger logging.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), PermissionDirectory); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A single connection serialises writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("Opened sqlite store", logging.Field{Key: logging.FieldStore, Value: dbPath})
	return &SQLiteStore{
		db:     db,
		logger: logger.WithField(logging.FieldStore, "sqlite"),
	}, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// kv adapts a connection or a transaction to the backend interface.
type kv struct {
	q queryer
}

func (k kv) get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := k.q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (k kv) put(ctx context.Context, key string, value []byte) error {
	_, err := k.q.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value))
	return err
}

func (s *SQLiteStore) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	return loadTransactions(ctx, kv{s.db})
}

func (s *SQLiteStore) SaveTransactions(ctx context.Context, txs []models.Transaction) error {
	return saveTransactions(ctx, kv{s.db}, txs)
}

// AppendTransaction reads, extends and writes the list inside one database transaction.
func (s *SQLiteStore) AppendTransaction(ctx context.Context, tx models.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := dbTx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.logger.WithError(err).Warn("Rollback failed")
		}
	}()

	txs, err := loadTransactions(ctx, kv{dbTx})
	if err != nil {
		return err
	}
	if err := saveTransactions(ctx, kv{dbTx}, append(txs, tx)); err != nil {
		return err
	}
	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Info("Appended transaction",
		logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
		logging.Field{Key: logging.FieldCount, Value: len(txs) + 1})
	return nil
}

func (s *SQLiteStore) LoadSettings(ctx context.Context) (models.Settings, error) {
	return loadSettings(ctx, kv{s.db})
}

func (s *SQLiteStore) SaveSettings(ctx context.Context, settings models.Settings) error {
	return saveSettings(ctx, kv{s.db}, settings)
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
