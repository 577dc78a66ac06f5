package config

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"fjacquet/fintrack/internal/logging"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads variables from the first .env file found among paths (default ".env").
// Variables already present in the environment are kept.
func LoadEnv(logger logging.Logger, paths ...string) {
	envOnce.Do(func() {
		loadEnvFiles(logger, paths...)
	})
}

func loadEnvFiles(logger logging.Logger, paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logger.WithError(err).Warn("Error loading .env file", logging.Field{Key: "file", Value: path})
			return
		}
		logger.Debug("Loaded environment variables", logging.Field{Key: "file", Value: path})
		return
	}
	logger.Debug("No .env file found, using environment variables")
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
