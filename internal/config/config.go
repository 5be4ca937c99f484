package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all runtime options, loaded from a TOML file with the
// PORT environment variable taking precedence over server.port.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Store       StoreConfig       `toml:"store"`
	Eligibility EligibilityConfig `toml:"eligibility"`
	Notify      NotifyConfig      `toml:"notify"`
	Closer      CloserConfig      `toml:"closer"`
	Log         LogConfig         `toml:"log"`
}

type ServerConfig struct {
	Port string `toml:"port"`
	// AdminToken gates the admin-only endpoints (auction management and
	// starting a close). Empty disables admin access entirely.
	AdminToken string `toml:"admin_token"`
}

type StoreConfig struct {
	DataDir string `toml:"data_dir"`
}

type EligibilityConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	CacheSize      int    `toml:"cache_size"`
}

type NotifyConfig struct {
	SendgridKey string `toml:"sendgrid_key"`
	FromName    string `toml:"from_name"`
	FromAddr    string `toml:"from_addr"`
	QueueSize   int    `toml:"queue_size"`
}

type CloserConfig struct {
	LotStaggerSeconds  int `toml:"lot_stagger_seconds"`
	SnipeWindowSeconds int `toml:"snipe_window_seconds"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server:      ServerConfig{Port: ":8080"},
		Store:       StoreConfig{DataDir: "./data"},
		Eligibility: EligibilityConfig{TimeoutSeconds: 5, CacheSize: 1024},
		Notify:      NotifyConfig{FromName: "Auction House", QueueSize: 256},
		Log:         LogConfig{Level: "info"},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing
// file is not an error: the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		if err := toml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}

	if p := os.Getenv("PORT"); p != "" {
		cfg.Server.Port = ":" + p
	}
	return cfg, nil
}

// EligibilityTimeout returns the checker timeout as a duration.
func (c *Config) EligibilityTimeout() time.Duration {
	if c.Eligibility.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Eligibility.TimeoutSeconds) * time.Second
}

// LotStagger returns the gap between consecutive lot end times.
// Zero means the closer's default.
func (c *Config) LotStagger() time.Duration {
	return time.Duration(c.Closer.LotStaggerSeconds) * time.Second
}

// SnipeWindow returns the anti-snipe quiet period.
// Zero means the closer's default.
func (c *Config) SnipeWindow() time.Duration {
	return time.Duration(c.Closer.SnipeWindowSeconds) * time.Second
}
