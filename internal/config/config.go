// Package config defines service configuration and its loading hooks.
package config

import (
	"context"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the slog handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// RefreshDelayMS is the simulated latency of an attrition refresh.
	RefreshDelayMS int `koanf:"refresh_delay_ms"`

	// AnalysisDelayMS is the simulated "analyzing" pause before formula results are returned.
	AnalysisDelayMS int `koanf:"analysis_delay_ms"`

	// RandomSeed seeds the refresh perturbation source. Zero means time seeded.
	RandomSeed int64 `koanf:"random_seed"`

	// DatasetPath optionally points at a YAML file replacing the built-in dataset.
	DatasetPath string `koanf:"dataset_path"`

	// IdempotencyCacheSize bounds the Idempotency-Key cache for employee creation.
	IdempotencyCacheSize int `koanf:"idempotency_cache_size"`

	// ReportDir is where exported reports are written. Empty disables report jobs and scheduling.
	ReportDir string `koanf:"report_dir"`

	// ReportQueueSize bounds the report job queue.
	ReportQueueSize int `koanf:"report_queue_size"`

	// ReportWorkers sets the number of report rendering workers.
	ReportWorkers int `koanf:"report_workers"`

	// ReportSchedule is an optional cron spec registered at start-up.
	ReportSchedule string `koanf:"report_schedule"`

	// StrictSkillLookup makes the decision engine reject unknown skills instead of falling back.
	StrictSkillLookup bool `koanf:"strict_skill_lookup"`
}

// New returns a Config populated with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":9080",
		RefreshDelayMS:       800,
		AnalysisDelayMS:      0,
		RandomSeed:           0,
		IdempotencyCacheSize: 1024,
		ReportQueueSize:      64,
		ReportWorkers:        2,
	}
}

// RefreshDelay returns RefreshDelayMS as a duration.
func (c *Config) RefreshDelay() time.Duration {
	return time.Duration(c.RefreshDelayMS) * time.Millisecond
}

// AnalysisDelay returns AnalysisDelayMS as a duration.
func (c *Config) AnalysisDelay() time.Duration {
	return time.Duration(c.AnalysisDelayMS) * time.Millisecond
}
