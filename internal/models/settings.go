package models

import (
	"strings"

	"fjacquet/fintrack/internal/apperror"
)

// DefaultCurrency is the currency symbol used until the user picks another one.
const DefaultCurrency = "₹"

// Settings holds the user's application preferences.
type Settings struct {
	IsDarkMode    bool   `json:"isDarkMode" yaml:"isDarkMode"`
	Currency      string `json:"currency" yaml:"currency"`
	IsAuthEnabled bool   `json:"isAuthEnabled" yaml:"isAuthEnabled"`
}

// DefaultSettings returns the settings of a fresh installation.
func DefaultSettings() Settings {
	return Settings{
		IsDarkMode:    false,
		Currency:      DefaultCurrency,
		IsAuthEnabled: false,
	}
}

// Validate rejects a blank currency.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Currency) == "" {
		return &apperror.ValidationError{Field: "currency", Reason: "currency cannot be empty"}
	}
	return nil
}
