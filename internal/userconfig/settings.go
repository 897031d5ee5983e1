package userconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the name of the optional app settings file under the
// crypto directory.
const SettingsFile = "settings.yaml"

// Settings holds app-level knobs that are not user data: where the API
// lives, how hard to hit it, and whether cached reference lists expire.
type Settings struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		RatePerMinute  int    `yaml:"rate_per_minute"`
	} `yaml:"api"`
	Cache struct {
		// Zero means cache files are never refreshed.
		TTLHours int `yaml:"ttl_hours"`
	} `yaml:"cache"`
}

// Timeout returns the HTTP timeout, zero when unset.
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.API.TimeoutSeconds) * time.Second
}

// CacheTTL returns the reference-list TTL, zero when unset.
func (s Settings) CacheTTL() time.Duration {
	return time.Duration(s.Cache.TTLHours) * time.Hour
}

// LoadSettings parses the settings file under dir. A missing file yields
// zero-valued settings; every consumer treats zero values as defaults.
func LoadSettings(dir string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(filepath.Join(dir, SettingsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	return s, nil
}
