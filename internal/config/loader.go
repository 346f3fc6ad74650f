package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
)

const (
	envPrefix  = "TALENTIQ_"
	envConfig  = "TALENTIQ_CONFIG"
	maxWorkers = 64
)

// Load builds a Config by layering, from low to high precedence:
//  1. defaults (New)
//  2. a YAML file if TALENTIQ_CONFIG is set
//  3. TALENTIQ_* environment variables
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)
	k := koanf.New(".")

	if path := os.Getenv(envConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// TALENTIQ_REFRESH_DELAY_MS -> refresh_delay_ms
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.RefreshDelayMS < 0:
		return fmt.Errorf("%w: refresh_delay_ms must not be negative", ErrInvalidConfig)
	case c.AnalysisDelayMS < 0:
		return fmt.Errorf("%w: analysis_delay_ms must not be negative", ErrInvalidConfig)
	case c.IdempotencyCacheSize <= 0:
		return fmt.Errorf("%w: idempotency_cache_size must be positive", ErrInvalidConfig)
	case c.ReportQueueSize <= 0:
		return fmt.Errorf("%w: report_queue_size must be positive", ErrInvalidConfig)
	case c.ReportWorkers <= 0 || c.ReportWorkers > maxWorkers:
		return fmt.Errorf("%w: report_workers must be in [1,%d]", ErrInvalidConfig, maxWorkers)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json", ErrInvalidConfig)
	}
	if c.ReportSchedule != "" {
		if c.ReportDir == "" {
			return fmt.Errorf("%w: report_schedule requires report_dir", ErrInvalidConfig)
		}
		if _, err := cron.ParseStandard(c.ReportSchedule); err != nil {
			return fmt.Errorf("%w: report_schedule: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
