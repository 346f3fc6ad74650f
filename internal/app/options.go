package service

import (
	"time"

	"github.com/okian/talentiq/internal/domain/dataset"
	"github.com/okian/talentiq/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataset replaces the built-in reference data.
func WithDataset(ds *dataset.Dataset) Option {
	return func(s *Service) {
		if ds != nil {
			s.dataset = ds
		}
	}
}

// WithRefreshDelay sets the simulated latency of a roster refresh.
func WithRefreshDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.refreshDelay = d
		}
	}
}

// WithAnalysisDelay sets the simulated latency of decision and simulator calls.
func WithAnalysisDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.analysisDelay = d
		}
	}
}

// WithRandomSeed makes refreshes and resilience jitter reproducible. Zero seeds from the clock.
func WithRandomSeed(seed int64) Option {
	return func(s *Service) {
		s.randomSeed = seed
	}
}

// WithDedupeSize sets how many idempotency keys are remembered.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithReportDir enables report export and scheduling into dir.
func WithReportDir(dir string) Option {
	return func(s *Service) {
		s.reportDir = dir
	}
}

// WithQueueSize sets the maximum number of pending report jobs.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of report workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithReportSchedule registers a recurring report at start-up.
func WithReportSchedule(spec string) Option {
	return func(s *Service) {
		s.reportSchedule = spec
	}
}

// WithStrictSkillLookup rejects decisions for skills that have no gap record.
func WithStrictSkillLookup(strict bool) Option {
	return func(s *Service) {
		s.strictSkills = strict
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
