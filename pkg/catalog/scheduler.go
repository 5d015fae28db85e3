package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultReloadTimeout bounds a single scheduled reload.
const DefaultReloadTimeout = 30 * time.Second

// Scheduler reloads a Catalog on a cron schedule.
type Scheduler struct {
	catalog *Catalog
	cron    *cron.Cron
	logger  *slog.Logger
	timeout time.Duration
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithReloadTimeout bounds each reload.
// Default: 30 seconds
func WithReloadTimeout(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithSchedulerLogger sets the logger for failed reloads.
// Default: the catalog's logger.
func WithSchedulerLogger(logger *slog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScheduler parses spec with the standard five-field cron syntax, which
// also accepts descriptors such as "@hourly" or "@every 5m".
//
// Example:
//
//	sched, err := catalog.NewScheduler(cat, "@every 5m")
//	if err != nil {
//		return err
//	}
//	sched.Start()
//	defer sched.Stop(ctx)
func NewScheduler(c *Catalog, spec string, opts ...SchedulerOption) (*Scheduler, error) {
	if c == nil {
		return nil, ErrNilSource
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, errors.Join(ErrInvalidSchedule, err)
	}

	s := &Scheduler{
		catalog: c,
		cron:    cron.New(),
		logger:  c.logger,
		timeout: DefaultReloadTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cron.Schedule(schedule, cron.FuncJob(s.reload))

	return s, nil
}

// Start begins running scheduled reloads in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running reload to finish or for
// ctx to be done, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown returns a shutdown function for the scheduler.
func (s *Scheduler) Shutdown() func(context.Context) error {
	return s.Stop
}

func (s *Scheduler) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.catalog.Reload(ctx); err != nil {
		s.logger.ErrorContext(ctx, "translations reload failed",
			slog.String("source", s.catalog.source.Name()),
			slog.String("error", err.Error()),
		)
	}
}
