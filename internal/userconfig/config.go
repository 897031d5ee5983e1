// Package userconfig persists the user's chosen defaults (coin and
// currency) and loads the optional app settings file.
package userconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// DefaultsFile is the name of the defaults file under the crypto directory.
const DefaultsFile = "defaults.json"

// Hardcoded fallbacks used when neither a flag nor a stored default names
// a coin or currency. Stored config takes precedence over these; explicit
// flags take precedence over both.
const (
	FallbackCoin     = "bitcoin"
	FallbackCurrency = "usd"
)

// Defaults is the persisted user configuration. Both keys are optional;
// empty values are omitted from the file.
type Defaults struct {
	Coin     string `json:"coin,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// Load parses the defaults file under dir. A missing file is initialized
// to an empty mapping and persisted, matching first-run behavior.
func Load(dir string) (Defaults, error) {
	path := filepath.Join(dir, DefaultsFile)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", path).Msg("config file not found, creating one")
		if err := Save(dir, Defaults{}); err != nil {
			return Defaults{}, err
		}
		return Defaults{}, nil
	}
	if err != nil {
		return Defaults{}, fmt.Errorf("failed to read config: %w", err)
	}

	var d Defaults
	if err := json.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return d, nil
}

// Save writes the defaults file under dir, replacing it wholesale.
func Save(dir string, d Defaults) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, DefaultsFile), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ResolveCoin returns the coin to use before validation: stored default if
// set, hardcoded fallback otherwise.
func (d Defaults) ResolveCoin() string {
	if d.Coin != "" {
		return d.Coin
	}
	return FallbackCoin
}

// ResolveCurrency returns the currency to use before validation: stored
// default if set, hardcoded fallback otherwise.
func (d Defaults) ResolveCurrency() string {
	if d.Currency != "" {
		return d.Currency
	}
	return FallbackCurrency
}
