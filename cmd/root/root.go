// Package root contains the root command for the application
package root

import (
	"errors"
	"sync"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies once PersistentPreRunE has run
	AppContainer *container.Container

	// ConfigFile is an explicit config file passed with --config
	ConfigFile string

	// LogLevel overrides log.level when set
	LogLevel string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fintrack",
		Short: "Track personal income and expenses and build spending reports.",
		Long: `fintrack records income and expense transactions, shows the balance,
breaks spending down by category and by month, and exports reports as
CSV, text, PDF, XLSX or JSON.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}
)

var finalizeOnce sync.Once

// Init initializes the root command and its persistent flags. The container is
// closed by a cobra finalizer, which also runs when a command returns an error.
func Init() {
	finalizeOnce.Do(func() { cobra.OnFinalize(teardown) })
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "config file (default $HOME/.fintrack/config.yaml)")
	Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func setup() error {
	config.LoadEnv(Log)

	cfg, err := config.LoadConfig(ConfigFile)
	if err != nil {
		return err
	}
	if LogLevel != "" {
		cfg.Log.Level = LogLevel
	}

	Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	c, err := container.NewContainerWithLogger(cfg, Log)
	if err != nil {
		return err
	}
	AppContainer = c
	return nil
}

func teardown() {
	if AppContainer == nil {
		return
	}
	if err := AppContainer.Close(); err != nil {
		Log.WithError(err).Warn("Failed to close container")
	}
	AppContainer = nil
}

// GetContainer returns the application container or an error when it was not initialized.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, errors.New("container not initialized")
	}
	return AppContainer, nil
}
