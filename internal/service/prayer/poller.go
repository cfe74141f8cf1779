package prayer

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
	"github.com/4imn/Sadeqi-backend/internal/observability/metrics"
	"github.com/4imn/Sadeqi-backend/internal/observability/tracing"
)

// DefaultHalfWidth is half the poll match window. With a 30s poll
// interval, consecutive windows of now±15s tile the timeline so every
// event instant is covered by exactly one tick on each side.
const DefaultHalfWidth = 15 * time.Second

// EventDispatcher delivers a fired prayer event to the scope's
// audience.
type EventDispatcher interface {
	DispatchPrayer(ctx context.Context, fired domain.FiredEvent) (*domain.PushReport, error)
}

// Poller matches index entries against a window around now and fires
// each match at most once. The index entry is removed before dispatch;
// the remove is atomic, so when several pollers share one index only
// the caller that actually removed the entry dispatches it.
type Poller struct {
	index      domain.EventIndex
	dispatcher EventDispatcher
	logger     *slog.Logger
	metrics    *metrics.SchedulerMetrics
	halfWidth  time.Duration

	inFlight atomic.Bool
}

func NewPoller(
	index domain.EventIndex,
	dispatcher EventDispatcher,
	logger *slog.Logger,
	schedulerMetrics *metrics.SchedulerMetrics,
	halfWidth time.Duration,
) *Poller {
	if halfWidth <= 0 {
		halfWidth = DefaultHalfWidth
	}
	return &Poller{
		index:      index,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    schedulerMetrics,
		halfWidth:  halfWidth,
	}
}

// Poll evicts stale entries, fires everything inside [now-halfWidth,
// now+halfWidth], and returns the events this caller fired. A call
// that overlaps a still-running poll returns immediately with no work
// done.
func (p *Poller) Poll(ctx context.Context, now time.Time) ([]domain.FiredEvent, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.WarnContext(ctx, "prayer poll skipped: previous poll still running")
		return nil, nil
	}
	defer p.inFlight.Store(false)

	start := time.Now()
	from := now.Add(-p.halfWidth)
	to := now.Add(p.halfWidth)

	ctx, span := tracing.StartPollSpan(ctx, "prayer", from, to)
	defer span.End()

	// Entries older than the window start were missed for good, e.g.
	// across a restart. They must never fire late.
	evicted, err := p.index.EvictBefore(ctx, from)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to evict stale events",
			slog.String("error", err.Error()))
		tracing.RecordPollResult(span, 0, 0, err)
		return nil, err
	}
	if evicted > 0 {
		p.metrics.RecordEvicted(ctx, "prayer", evicted)
		p.logger.WarnContext(ctx, "evicted stale events",
			slog.Int("count", evicted))
	}

	hits, err := p.index.Range(ctx, from, to)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to query event window",
			slog.String("error", err.Error()))
		tracing.RecordPollResult(span, 0, evicted, err)
		return nil, err
	}

	fired := make([]domain.FiredEvent, 0, len(hits))
	for _, event := range hits {
		// Remove first: the winner of the removal is the only caller
		// allowed to dispatch, so delivery happens at most once even
		// when pollers overlap.
		removed, err := p.index.Remove(ctx, event.Key())
		if err != nil {
			p.logger.ErrorContext(ctx, "failed to remove event",
				slog.String("member", event.Key().Member()),
				slog.String("error", err.Error()))
			continue
		}
		if !removed {
			continue
		}

		fe := domain.FiredEvent{Event: event, FiredAt: now}
		fired = append(fired, fe)
		p.metrics.RecordEventFired(ctx, "prayer")

		report, err := p.dispatcher.DispatchPrayer(ctx, fe)
		if err != nil {
			p.metrics.RecordDispatchFailure(ctx, "prayer")
			p.logger.ErrorContext(ctx, "failed to dispatch prayer event",
				slog.String("member", event.Key().Member()),
				slog.String("error", err.Error()))
			continue
		}

		p.logger.InfoContext(ctx, "prayer event fired",
			slog.String("scope", event.Scope),
			slog.String("label", event.Label),
			slog.Int("success_count", report.SuccessCount),
			slog.Int("failure_count", report.FailureCount))
	}

	p.metrics.RecordPollDuration(ctx, "prayer", time.Since(start))
	tracing.RecordPollResult(span, len(fired), evicted, nil)
	return fired, nil
}
