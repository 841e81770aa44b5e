// Package config loads the server configuration. Values are layered:
// built-in defaults, then an optional YAML file, then AGRI_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config is the full server configuration.
type Config struct {
	Server   Server   `koanf:"server"`
	Log      Log      `koanf:"log"`
	Uploads  Uploads  `koanf:"uploads"`
	CORS     CORS     `koanf:"cors"`
	Matching Matching `koanf:"matching"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Uploads configures the disease image upload endpoint. RateLimit is the
// number of uploads per client IP per RateWindow; 0 disables limiting.
type Uploads struct {
	Dir               string        `koanf:"dir"`
	MaxBytes          int64         `koanf:"max_bytes"`
	AllowedExtensions []string      `koanf:"allowed_extensions"`
	RateLimit         int           `koanf:"rate_limit"`
	RateWindow        time.Duration `koanf:"rate_window"`
}

type CORS struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
	MaxAge         int      `koanf:"max_age"`
}

type Matching struct {
	DefaultMaxDistanceKm float64 `koanf:"default_max_distance_km"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            ":5000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: Log{
			Level:  "info",
			Format: "json",
		},
		Uploads: Uploads{
			Dir:               "static/uploads",
			MaxBytes:          16 << 20,
			AllowedExtensions: []string{"png", "jpg", "jpeg"},
			RateLimit:         30,
			RateWindow:        time.Minute,
		},
		CORS: CORS{
			AllowedOrigins: []string{"*"},
			MaxAge:         300,
		},
		Matching: Matching{
			DefaultMaxDistanceKm: 200,
		},
	}
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	if strings.TrimSpace(c.Uploads.Dir) == "" {
		errs = append(errs, errors.New("uploads.dir is required"))
	}
	if c.Uploads.MaxBytes <= 0 {
		errs = append(errs, errors.New("uploads.max_bytes must be positive"))
	}
	if len(c.Uploads.AllowedExtensions) == 0 {
		errs = append(errs, errors.New("uploads.allowed_extensions must not be empty"))
	}
	if c.Uploads.RateLimit < 0 {
		errs = append(errs, errors.New("uploads.rate_limit must not be negative"))
	}
	if c.Uploads.RateLimit > 0 && c.Uploads.RateWindow <= 0 {
		errs = append(errs, errors.New("uploads.rate_window must be positive"))
	}
	if c.Matching.DefaultMaxDistanceKm <= 0 {
		errs = append(errs, errors.New("matching.default_max_distance_km must be positive"))
	}
	return errors.Join(errs...)
}
