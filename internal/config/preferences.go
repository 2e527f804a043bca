package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/calckit/pkg/locale"
)

// Preferences holds per-user defaults read from config.toml.
type Preferences struct {
	Locale                  string       `toml:"locale"`
	Currency                string       `toml:"currency"`
	DefaultFormat           string       `toml:"default_format"`
	DefaultCompounding      int          `toml:"default_compounding"`
	DefaultInflationPercent float64      `toml:"default_inflation_percent"`
	OutputDir               string       `toml:"output_dir,omitempty"`
	Server                  ServerConfig `toml:"server"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	Addr       string   `toml:"addr"`
	RateLimit  int      `toml:"rate_limit"`
	RateWindow Duration `toml:"rate_window"`
	RedisAddr  string   `toml:"redis_addr,omitempty"`
}

// Duration lets TOML carry values such as "1m" or "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultPreferences returns the built-in defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		Locale:             locale.DefaultLocale,
		Currency:           locale.DefaultCurrency,
		DefaultFormat:      "console",
		DefaultCompounding: 12,
		Server: ServerConfig{
			Addr:       ":8080",
			RateLimit:  60,
			RateWindow: Duration{time.Minute},
		},
	}
}

// Validate checks values that cannot be caught by TOML decoding.
func (p Preferences) Validate() error {
	if _, err := locale.New(p.Locale, p.Currency); err != nil {
		return err
	}
	if p.DefaultCompounding <= 0 {
		return fmt.Errorf("default_compounding must be positive")
	}
	if p.DefaultInflationPercent < 0 {
		return fmt.Errorf("default_inflation_percent cannot be negative")
	}
	if p.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive")
	}
	if p.Server.RateWindow.Duration <= 0 {
		return fmt.Errorf("server.rate_window must be positive")
	}
	return nil
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "calckit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "calckit")
}

// Path returns the default location of config.toml.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads preferences from path, returning defaults if the file doesn't
// exist. An empty path means Path().
func Load(path string) (Preferences, error) {
	if path == "" {
		path = Path()
	}
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing config: %w", err)
	}
	if err := prefs.Validate(); err != nil {
		return prefs, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return prefs, nil
}

// Save writes preferences to path, creating its directory. An empty path
// means Path().
func Save(path string, prefs Preferences) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(prefs)
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	if path == "" {
		path = Path()
	}
	_, err := os.Stat(path)
	return err == nil
}
