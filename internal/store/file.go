package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
)

// File permissions
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
)

// FileStore keeps each key in its own JSON file under a data directory.
// Writes go to a temporary file that is renamed over the target.
type FileStore struct {
	dir    string
	logger logging.Logger
	mu     sync.Mutex
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string, logger logging.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, PermissionDirectory); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}
	logger.Debug("Opened file store", logging.Field{Key: logging.FieldStore, Value: dir})
	return &FileStore{
		dir:    dir,
		logger: logger.WithField(logging.FieldStore, "file"),
	}, nil
}

// KeyPath returns the file backing key.
func (s *FileStore) KeyPath(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".json")
}

func sanitizeKey(key string) string {
	var sb strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

func (s *FileStore) get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.KeyPath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errNotFound
	}
	return raw, err
}

func (s *FileStore) put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.KeyPath(key)

	tmp, err := os.CreateTemp(s.dir, filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			if err := os.Remove(tmpName); err != nil {
				s.logger.WithError(err).Warn("Failed to remove temporary file")
			}
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(PermissionDataFile); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, target); err != nil {
		return err
	}

	s.logger.Debug("Wrote key",
		logging.Field{Key: logging.FieldKey, Value: key},
		logging.Field{Key: logging.FieldBytes, Value: len(value)})
	return nil
}

func (s *FileStore) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadTransactions(ctx, s)
}

func (s *FileStore) SaveTransactions(ctx context.Context, txs []models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveTransactions(ctx, s, txs)
}

// AppendTransaction adds tx to the end of the persisted list.
func (s *FileStore) AppendTransaction(ctx context.Context, tx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := loadTransactions(ctx, s)
	if err != nil {
		return err
	}
	if err := saveTransactions(ctx, s, append(txs, tx)); err != nil {
		return err
	}
	s.logger.Info("Appended transaction",
		logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
		logging.Field{Key: logging.FieldCount, Value: len(txs) + 1})
	return nil
}

func (s *FileStore) LoadSettings(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadSettings(ctx, s)
}

func (s *FileStore) SaveSettings(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveSettings(ctx, s, settings)
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}
