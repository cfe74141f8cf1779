package prayer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
	"github.com/4imn/Sadeqi-backend/internal/observability/metrics"
	"github.com/4imn/Sadeqi-backend/internal/observability/tracing"
	"github.com/4imn/Sadeqi-backend/internal/timeutil"
)

// ScopeFailure records a scope whose daily schedule could not be
// refreshed. The remaining scopes are unaffected.
type ScopeFailure struct {
	Scope string
	Err   error
}

// Result aggregates one recompute run over all scopes.
type Result struct {
	Day       string
	Total     int
	Succeeded int
	Failures  []ScopeFailure
}

// Recomputer refreshes the shared event index with each scope's daily
// schedule. It runs once shortly after midnight and once at startup;
// re-running for a day the index already holds is a harmless
// overwrite with identical values.
type Recomputer struct {
	scopes  domain.ScopeProvider
	calc    domain.DailyTimeCalculator
	index   domain.EventIndex
	logger  *slog.Logger
	metrics *metrics.SchedulerMetrics
	now     func() time.Time
}

func NewRecomputer(
	scopes domain.ScopeProvider,
	calc domain.DailyTimeCalculator,
	index domain.EventIndex,
	logger *slog.Logger,
	schedulerMetrics *metrics.SchedulerMetrics,
) *Recomputer {
	return &Recomputer{
		scopes:  scopes,
		calc:    calc,
		index:   index,
		logger:  logger,
		metrics: schedulerMetrics,
		now:     time.Now,
	}
}

// WithClock overrides the recomputer's clock for tests.
func (r *Recomputer) WithClock(now func() time.Time) *Recomputer {
	r.now = now
	return r
}

// Run recomputes today's schedule for every scope. A scope failure is
// recorded in the result and does not abort the run; Run returns an
// error only when the scope list itself cannot be obtained.
func (r *Recomputer) Run(ctx context.Context) (*Result, error) {
	now := r.now()
	ctx, span := tracing.StartRecomputeSpan(ctx, domain.DayKey(now))
	defer span.End()

	start := time.Now()
	scopes, err := r.scopes.ListScopes(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list scopes for recompute",
			slog.String("error", err.Error()))
		tracing.RecordRecomputeResult(span, 0, 0, err)
		return nil, fmt.Errorf("failed to list scopes: %w", err)
	}

	result := &Result{Day: domain.DayKey(now), Total: len(scopes)}
	for _, scope := range scopes {
		if err := r.recomputeScope(ctx, scope, now); err != nil {
			result.Failures = append(result.Failures, ScopeFailure{Scope: scope.Code, Err: err})
			r.metrics.RecordRecomputeScopeFailure(ctx, scope.Code)
			r.logger.ErrorContext(ctx, "failed to recompute scope schedule",
				slog.String("scope", scope.Code),
				slog.String("error", err.Error()))
			continue
		}
		result.Succeeded++
	}

	r.metrics.RecordRecomputeDuration(ctx, time.Since(start))
	tracing.RecordRecomputeResult(span, result.Succeeded, len(result.Failures), nil)
	r.logger.InfoContext(ctx, "daily schedule recompute finished",
		slog.Int("total", result.Total),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", len(result.Failures)))
	return result, nil
}

func (r *Recomputer) recomputeScope(ctx context.Context, scope domain.Scope, now time.Time) error {
	local := now
	if scope.Location != nil {
		local = now.In(scope.Location)
	}

	times, err := r.calc.ComputeDailyTimes(ctx, scope, local)
	if err != nil {
		return err
	}
	return r.UpsertScopeEvents(ctx, scope, local, times)
}

// UpsertScopeEvents writes one scope's label->HH:MM schedule for the
// given date into the index. Each HH:MM is anchored to the date's
// calendar day in the scope's location, so "05:12" for SAU means
// 05:12 Riyadh time regardless of where the process runs.
func (r *Recomputer) UpsertScopeEvents(ctx context.Context, scope domain.Scope, date time.Time, times map[string]string) error {
	labels := make([]string, 0, len(times))
	for label := range times {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	day := domain.DayKey(date)
	for _, label := range labels {
		at, err := timeutil.At(date, times[label], scope.Location)
		if err != nil {
			return fmt.Errorf("invalid time for %s/%s: %w", scope.Code, label, err)
		}
		event := domain.Event{
			Scope: scope.Code,
			Day:   day,
			Label: label,
			Time:  at,
		}
		if err := r.index.Upsert(ctx, event); err != nil {
			return fmt.Errorf("failed to upsert %s: %w", event.Key().Member(), err)
		}
	}
	return nil
}
