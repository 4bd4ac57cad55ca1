package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable, e.g. HTTPSAUDIT_WORKERS.
const EnvPrefix = "HTTPSAUDIT"

type Config struct {
	InputPath string `yaml:"input" envconfig:"INPUT"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	LogDir    string `yaml:"log_dir" envconfig:"LOG_DIR"`
	LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	Workers int           `yaml:"workers" envconfig:"WORKERS"` // tasks in flight
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT"` // per request

	// RatePerSecond caps how fast probes are launched; 0 disables the cap.
	RatePerSecond float64 `yaml:"rate_per_second" envconfig:"RATE_PER_SECOND"`
	UserAgent     string  `yaml:"user_agent" envconfig:"USER_AGENT"`

	// SlackWebhook receives the run summary; empty disables notification.
	SlackWebhook string `yaml:"slack_webhook" envconfig:"SLACK_WEBHOOK"`
}

func Defaults() Config {
	return Config{
		InputPath: "url.txt",
		OutputDir: "results",
		LogDir:    "logs",
		LogLevel:  "info",
		Workers:   10,
		Timeout:   10 * time.Second,
		UserAgent: "httpsaudit/1.0",
	}
}

// Load starts from Defaults, applies the YAML file at path (skipped when
// path is empty), then .env and HTTPSAUDIT_* environment variables.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	// a missing .env is fine; real environment variables still apply
	_ = godotenv.Load()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var err error
	if c.InputPath == "" {
		err = multierr.Append(err, errors.New("input path is empty"))
	}
	if c.OutputDir == "" {
		err = multierr.Append(err, errors.New("output dir is empty"))
	}
	if c.Workers < 1 {
		err = multierr.Append(err, fmt.Errorf("workers must be >= 1, got %d", c.Workers))
	}
	if c.Timeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("timeout must be > 0, got %s", c.Timeout))
	}
	if c.RatePerSecond < 0 {
		err = multierr.Append(err, fmt.Errorf("rate_per_second must be >= 0, got %v", c.RatePerSecond))
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
