package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Cron specs use the six-field form with a seconds column.
const (
	// DailyRecomputeSpec runs at 00:01 so the new day's schedule is in
	// place before the first event of the day.
	DailyRecomputeSpec = "0 1 0 * * *"
	// PrayerPollSpec ticks every 30 seconds, matching the poll
	// window's 15-second half width.
	PrayerPollSpec = "*/30 * * * * *"
	// MedicinePollSpec ticks at the top of every minute, matching the
	// minute-bucket due query.
	MedicinePollSpec = "0 * * * * *"
)

// Job is a named periodic task. Run receives a fresh context per tick.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
}

// Scheduler drives the periodic jobs on cron schedules. Ticks that
// arrive while the previous run of the same job is still executing
// are skipped rather than queued.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func New(logger *slog.Logger, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLocation(loc),
		cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
			cron.Recover(cron.DiscardLogger),
		),
	)
	return &Scheduler{
		cron:   c,
		logger: logger,
	}
}

func (s *Scheduler) Register(job Job) error {
	if job.Name == "" || job.Run == nil {
		return fmt.Errorf("invalid job: name and run func are required")
	}

	_, err := s.cron.AddFunc(job.Spec, func() {
		ctx := context.Background()
		start := time.Now()
		if err := job.Run(ctx); err != nil {
			s.logger.ErrorContext(ctx, "scheduled job failed",
				slog.String("job", job.Name),
				slog.String("error", err.Error()))
			return
		}
		s.logger.DebugContext(ctx, "scheduled job finished",
			slog.String("job", job.Name),
			slog.Duration("elapsed", time.Since(start)))
	})
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", job.Name, err)
	}

	s.logger.Info("registered scheduled job",
		slog.String("job", job.Name),
		slog.String("spec", job.Spec))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for in-flight jobs to finish, up to
// the deadline of ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown deadline reached with jobs still running: %w", ctx.Err())
	}
}
