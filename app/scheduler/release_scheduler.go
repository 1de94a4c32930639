// Package scheduler
package scheduler

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/nagasrivarun/global-stream-main/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gopkg.in/natefinch/lumberjack.v2"

	businessflow "github.com/nagasrivarun/global-stream-main/business_flow"
)

var (
	// Releases promoted to visible by scheduler runs
	releasesProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "release_scheduler_processed_total",
		Help: "Total number of regional releases promoted to visible by the scheduler",
	})

	// Promotions that failed inside scheduler runs
	releaseFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "release_scheduler_failures_total",
		Help: "Total number of regional release promotions that failed in the scheduler",
	})

	// Scheduler runs that could not complete at all
	schedulerRunErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "release_scheduler_run_errors_total",
		Help: "Total number of scheduler runs that aborted with an error",
	})

	// Duration of scheduler runs
	schedulerRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "release_scheduler_run_duration_seconds",
		Help:    "Duration of release scheduler runs in seconds",
		Buckets: prometheus.DefBuckets,
	})
)

// ReleaseScheduler periodically promotes due release intents into regional visibility
type ReleaseScheduler struct {
	processorFlow  businessflow.ProcessorFlow
	logger         *log.Logger
	interval       time.Duration
	processOnStart bool
}

// NewReleaseScheduler creates a new release scheduler
func NewReleaseScheduler(
	processorFlow businessflow.ProcessorFlow,
	schedulerCfg config.SchedulerConfig,
	loggingCfg config.LoggingConfig,
) *ReleaseScheduler {
	interval := schedulerCfg.Interval
	if interval <= 0 {
		interval = time.Hour
	}

	s := &ReleaseScheduler{
		processorFlow:  processorFlow,
		interval:       interval,
		processOnStart: schedulerCfg.ProcessOnStart,
	}
	s.initSchedulerLogger(loggingCfg)

	return s
}

// initSchedulerLogger configures a logger that writes to stdout and, when
// enabled, a size-rotated persistent file.
func (s *ReleaseScheduler) initSchedulerLogger(cfg config.LoggingConfig) {
	var w io.Writer = os.Stdout
	if cfg.EnableSchedulerLog && cfg.SchedulerLogPath != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.SchedulerLogPath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		w = io.MultiWriter(os.Stdout, rotated)
	}
	// log.Logger is goroutine-safe; include timestamps with microseconds and UTC
	s.logger = log.New(w, "scheduler ", log.LstdFlags|log.Lmicroseconds|log.LUTC)
}

// Start launches the scheduler loop in a background goroutine and returns a stop function
func (s *ReleaseScheduler) Start(parent context.Context) func() {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		if s.processOnStart {
			s.runOnce(ctx)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()

	return cancel
}

func (s *ReleaseScheduler) runOnce(ctx context.Context) {
	start := time.Now()
	defer func() {
		schedulerRunDuration.Observe(time.Since(start).Seconds())
	}()

	metadata := businessflow.NewClientMetadata("", "release-scheduler")
	result, err := s.processorFlow.ProcessScheduledReleases(ctx, nil, metadata)
	if err != nil {
		schedulerRunErrorsTotal.Inc()
		s.logger.Printf("scheduler: release processing failed: %v", err)
		return
	}

	releasesProcessedTotal.Add(float64(result.Processed))
	releaseFailuresTotal.Add(float64(result.Failed))

	if result.Processed == 0 && result.Failed == 0 {
		return
	}
	s.logger.Printf("scheduler: processed %d release(s) as of %s, %d failed", result.Processed, result.AsOfDate, result.Failed)
}
