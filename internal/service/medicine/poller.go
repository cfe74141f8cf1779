package medicine

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
	"github.com/4imn/Sadeqi-backend/internal/observability/metrics"
	"github.com/4imn/Sadeqi-backend/internal/observability/tracing"
)

// ReminderDispatcher delivers a due medicine reminder to its owner's
// devices.
type ReminderDispatcher interface {
	DispatchMedicine(ctx context.Context, reminder *domain.MedicineReminder, firedAt time.Time) (*domain.PushReport, error)
}

// Poller scans the reminder store once per minute bucket and fires
// every reminder whose NextFireAt falls inside the bucket. A reminder
// is marked fired before dispatch, so a delivery failure never causes
// a second attempt for the same instant.
type Poller struct {
	service    *Service
	store      domain.ReminderStore
	dispatcher ReminderDispatcher
	logger     *slog.Logger
	metrics    *metrics.SchedulerMetrics

	inFlight atomic.Bool
}

func NewPoller(
	service *Service,
	store domain.ReminderStore,
	dispatcher ReminderDispatcher,
	logger *slog.Logger,
	schedulerMetrics *metrics.SchedulerMetrics,
) *Poller {
	return &Poller{
		service:    service,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    schedulerMetrics,
	}
}

// Poll fires every reminder due in the minute bucket containing now
// and returns the reminders it fired. Overlapping calls are rejected:
// a call that arrives while a previous one is still running returns
// immediately with no work done.
func (p *Poller) Poll(ctx context.Context, now time.Time) ([]*domain.MedicineReminder, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.WarnContext(ctx, "medicine poll skipped: previous poll still running")
		return nil, nil
	}
	defer p.inFlight.Store(false)

	start := time.Now()
	from := now.Truncate(time.Minute)
	to := from.Add(59 * time.Second)

	ctx, span := tracing.StartPollSpan(ctx, "medicine", from, to)
	defer span.End()

	due, err := p.store.FindDueBetween(ctx, from, to)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to query due reminders",
			slog.String("error", err.Error()))
		tracing.RecordPollResult(span, 0, 0, err)
		return nil, err
	}

	fired := make([]*domain.MedicineReminder, 0, len(due))
	for _, reminder := range due {
		if !reminder.Enabled {
			continue
		}

		// Advance the reminder first: losing the dispatch is
		// recoverable, duplicate delivery is not.
		if err := p.service.MarkFired(ctx, reminder, now); err != nil {
			p.logger.ErrorContext(ctx, "failed to mark reminder fired",
				slog.String("reminder_id", reminder.ID),
				slog.String("error", err.Error()))
			continue
		}

		fired = append(fired, reminder)
		p.metrics.RecordEventFired(ctx, "medicine")

		report, err := p.dispatcher.DispatchMedicine(ctx, reminder, now)
		if err != nil {
			p.metrics.RecordDispatchFailure(ctx, "medicine")
			p.logger.ErrorContext(ctx, "failed to dispatch medicine reminder",
				slog.String("reminder_id", reminder.ID),
				slog.String("user_id", reminder.UserID),
				slog.String("error", err.Error()))
			continue
		}

		p.logger.InfoContext(ctx, "medicine reminder fired",
			slog.String("reminder_id", reminder.ID),
			slog.String("user_id", reminder.UserID),
			slog.Int("success_count", report.SuccessCount),
			slog.Int("failure_count", report.FailureCount))
	}

	p.metrics.RecordPollDuration(ctx, "medicine", time.Since(start))
	tracing.RecordPollResult(span, len(fired), 0, nil)
	return fired, nil
}
