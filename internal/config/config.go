package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds the service settings. Values come from defaults, then the TOML
// file, then MARKET_* environment variables.
type Config struct {
	ListenAddress string `toml:"ListenAddress" env:"MARKET_LISTEN_ADDRESS"`
	StoreBackend  string `toml:"StoreBackend" env:"MARKET_STORE_BACKEND"`
	DataDir       string `toml:"DataDir" env:"MARKET_DATA_DIR"`
	LogLevel      string `toml:"LogLevel" env:"MARKET_LOG_LEVEL"`
	LogFile       string `toml:"LogFile" env:"MARKET_LOG_FILE"`
	LogMaxSizeMB  int    `toml:"LogMaxSizeMB" env:"MARKET_LOG_MAX_SIZE_MB"`
	MetricsPath   string `toml:"MetricsPath" env:"MARKET_METRICS_PATH"`

	// SignatureWindowSeconds is how far a signed request's timestamp may be
	// from the server clock in either direction.
	SignatureWindowSeconds int `toml:"SignatureWindowSeconds" env:"MARKET_SIGNATURE_WINDOW_SECONDS"`

	// Port keeps the plain PORT convention; it wins over ListenAddress.
	Port string `toml:"-" env:"PORT"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		ListenAddress: ":8080",
		StoreBackend:  "bolt",
		DataDir:       "./data",
		LogLevel:      "info",
		LogMaxSizeMB:  100,
		MetricsPath:   "/metrics",

		SignatureWindowSeconds: 300,
	}
}

// Load reads path (when non-empty and present), applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		if _, err := os.Stat(path); err == nil {
			meta, err := toml.DecodeFile(path, &cfg)
			if err != nil {
				return nil, fmt.Errorf("decode config %s: %w", path, err)
			}
			if undecoded := meta.Undecoded(); len(undecoded) > 0 {
				return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if p := strings.TrimSpace(cfg.Port); p != "" {
		cfg.ListenAddress = ":" + p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot start with
func (c Config) Validate() error {
	if strings.TrimSpace(c.ListenAddress) == "" {
		return errors.New("config: ListenAddress is required")
	}
	switch strings.ToLower(c.StoreBackend) {
	case "memory":
	case "bolt", "leveldb":
		if strings.TrimSpace(c.DataDir) == "" {
			return fmt.Errorf("config: DataDir is required for the %s backend", c.StoreBackend)
		}
	default:
		return fmt.Errorf("config: unknown StoreBackend %q", c.StoreBackend)
	}
	if !strings.HasPrefix(c.MetricsPath, "/") {
		return fmt.Errorf("config: MetricsPath %q must start with /", c.MetricsPath)
	}
	if c.SignatureWindowSeconds <= 0 {
		return errors.New("config: SignatureWindowSeconds must be positive")
	}
	if c.LogMaxSizeMB < 0 {
		return errors.New("config: LogMaxSizeMB must not be negative")
	}
	return nil
}
