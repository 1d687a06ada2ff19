// Package config loads process configuration for the tzselect command from
// the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Prefix namespaces every variable, e.g. TZSELECT_SERVER_PORT.
const Prefix = "TZSELECT"

type Config struct {
	Server struct {
		Host                  string `envconfig:"HOST" default:"0.0.0.0"`
		Port                  string `envconfig:"PORT" default:"8080"`
		RoutePath             string `envconfig:"ROUTE_PATH" default:"/api/timezones"`
		RequestTimeoutSeconds int    `envconfig:"REQUEST_TIMEOUT_SECONDS" default:"15"`
		Shutdown              struct {
			GracePeriodSeconds int `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	Locale struct {
		Default       string   `envconfig:"DEFAULT" default:"en"`
		Dir           string   `envconfig:"DIR"`
		Priority      []string `envconfig:"PRIORITY"`
		PriorityLabel string   `envconfig:"PRIORITY_LABEL"`
	} `envconfig:"LOCALE"`

	TemplateDir string `envconfig:"TEMPLATE_DIR"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads envFile when present and then processes the environment.
// A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile = strings.TrimSpace(envFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config: load %s: %w", envFile, err)
			}
			log.Debug().Str("file", envFile).Msg("env file not found, using environment")
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("config: server port required")
	}
	if c.Server.RequestTimeoutSeconds < 0 {
		return errors.New("config: request timeout must not be negative")
	}
	if c.Server.Shutdown.GracePeriodSeconds < 0 {
		return errors.New("config: shutdown grace period must not be negative")
	}
	return nil
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutSeconds) * time.Second
}

func (c *Config) ShutdownGrace() time.Duration {
	return time.Duration(c.Server.Shutdown.GracePeriodSeconds) * time.Second
}

// PriorityZones returns the configured priority zones with blanks removed.
func (c *Config) PriorityZones() []string {
	out := make([]string, 0, len(c.Locale.Priority))
	for _, zone := range c.Locale.Priority {
		if zone = strings.TrimSpace(zone); zone != "" {
			out = append(out, zone)
		}
	}
	return out
}
