// Package settings implements the command that shows and changes the user preferences.
package settings

import (
	"context"
	"fmt"
	"io"
	"strings"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Update lists the preferences to change. Nil fields are left as stored.
type Update struct {
	DarkMode *bool
	Currency *string
	Auth     *bool
}

// IsEmpty reports whether the update changes nothing.
func (u Update) IsEmpty() bool {
	return u.DarkMode == nil && u.Currency == nil && u.Auth == nil
}

// Apply returns s with the update applied.
func (u Update) Apply(s models.Settings) models.Settings {
	if u.DarkMode != nil {
		s.IsDarkMode = *u.DarkMode
	}
	if u.Currency != nil {
		s.Currency = strings.TrimSpace(*u.Currency)
	}
	if u.Auth != nil {
		s.IsAuthEnabled = *u.Auth
	}
	return s
}

var (
	darkMode bool
	currency string
	auth     bool
	reset    bool
)

// Cmd represents the settings command
var Cmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the application settings",
	Long: `Without flags the current settings are printed. --dark-mode, --currency and
--auth change the corresponding preference; --reset restores the defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}

		var u Update
		if cmd.Flags().Changed("dark-mode") {
			u.DarkMode = &darkMode
		}
		if cmd.Flags().Changed("currency") {
			u.Currency = &currency
		}
		if cmd.Flags().Changed("auth") {
			u.Auth = &auth
		}
		_, err = Run(cmd.Context(), c.GetStore(), c.GetLogger(), u, reset, cmd.OutOrStdout())
		return err
	},
}

func init() {
	Cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "Enable or disable dark mode")
	Cmd.Flags().StringVar(&currency, "currency", models.DefaultCurrency, "Currency symbol or code")
	Cmd.Flags().BoolVar(&auth, "auth", false, "Enable or disable authentication")
	Cmd.Flags().BoolVar(&reset, "reset", false, "Restore the default settings")
}

// Run applies u (or the defaults when reset is set), persists the result when it changed
// and prints the settings as YAML.
func Run(ctx context.Context, s store.Store, logger logging.Logger, u Update, reset bool, out io.Writer) (models.Settings, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	current, err := s.LoadSettings(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	next := current
	if reset {
		next = models.DefaultSettings()
	}
	next = u.Apply(next)

	if next != current {
		if err := s.SaveSettings(ctx, next); err != nil {
			return models.Settings{}, fmt.Errorf("failed to save settings: %w", err)
		}
		logger.Info("Settings updated",
			logging.Field{Key: "dark_mode", Value: next.IsDarkMode},
			logging.Field{Key: "currency", Value: next.Currency},
			logging.Field{Key: "auth", Value: next.IsAuthEnabled})
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(next); err != nil {
		return models.Settings{}, err
	}
	return next, enc.Close()
}
