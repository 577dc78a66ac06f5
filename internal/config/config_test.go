package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fintrack/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FINTRACK_TEST_VALUE=from-dotenv\n"), 0600))
	t.Setenv("FINTRACK_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("FINTRACK_TEST_VALUE"))

	logger := logging.NewMockLogger()
	loadEnvFiles(logger, filepath.Join(dir, "missing.env"), envFile)

	assert.Equal(t, "from-dotenv", os.Getenv("FINTRACK_TEST_VALUE"))
	assert.True(t, logger.HasEntry("DEBUG", "Loaded environment variables"))
}

func TestLoadEnvFiles_KeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FINTRACK_TEST_VALUE=from-dotenv\n"), 0600))
	t.Setenv("FINTRACK_TEST_VALUE", "from-shell")

	loadEnvFiles(logging.NewMockLogger(), envFile)

	assert.Equal(t, "from-shell", os.Getenv("FINTRACK_TEST_VALUE"))
}

func TestLoadEnvFiles_NoFile(t *testing.T) {
	logger := logging.NewMockLogger()
	loadEnvFiles(logger, filepath.Join(t.TempDir(), "absent.env"))
	assert.True(t, logger.HasEntry("DEBUG", "No .env file found, using environment variables"))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FINTRACK_TEST_GETENV", "value")
	assert.Equal(t, "value", GetEnv("FINTRACK_TEST_GETENV", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FINTRACK_TEST_UNSET_KEY", "fallback"))
}
