package repository

import (
	"time"

	"github.com/okian/talentiq/pkg/logger"
)

// IntSource yields integers in [0,n). *rand.Rand satisfies it.
type IntSource interface {
	Intn(n int) int
}

// Option applies a configuration option to the InMemoryStore.
type Option func(*InMemoryStore)

// WithRefreshDelay sets how long a refresh waits before perturbing scores.
func WithRefreshDelay(d time.Duration) Option {
	return func(s *InMemoryStore) {
		if d >= 0 {
			s.refreshDelay = d
		}
	}
}

// WithRand sets the random source used by Refresh.
func WithRand(r IntSource) Option {
	return func(s *InMemoryStore) {
		if r != nil {
			s.rnd = r
		}
	}
}

// WithIDGenerator replaces the employee id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *InMemoryStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithClock replaces the time source used for ids.
func WithClock(now func() time.Time) Option {
	return func(s *InMemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(l logger.Logger) Option {
	return func(s *InMemoryStore) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetricsUpdateInterval sets the interval for background roster gauges.
func WithMetricsUpdateInterval(interval time.Duration) Option {
	return func(s *InMemoryStore) {
		if interval > 0 {
			s.metricsUpdateInterval = interval
		}
	}
}
