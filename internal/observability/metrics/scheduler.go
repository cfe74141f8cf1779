package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	schedulerMeterName = "reminder.scheduler"
)

type SchedulerMetrics struct {
	eventsFired           metric.Int64Counter
	dispatchFailures      metric.Int64Counter
	recipientFailures     metric.Int64Counter
	entriesEvicted        metric.Int64Counter
	recomputeScopeFailure metric.Int64Counter
	pollDuration          metric.Float64Histogram
	recomputeDuration     metric.Float64Histogram
}

func NewSchedulerMetrics() (*SchedulerMetrics, error) {
	meter := otel.Meter(schedulerMeterName)

	eventsFired, err := meter.Int64Counter(
		"scheduler_events_fired_total",
		metric.WithDescription("Total number of due items matched and fired"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	dispatchFailures, err := meter.Int64Counter(
		"scheduler_dispatch_failures_total",
		metric.WithDescription("Total number of fired items whose dispatch failed as a whole"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	recipientFailures, err := meter.Int64Counter(
		"scheduler_recipient_failures_total",
		metric.WithDescription("Total number of individual recipients that could not be delivered to"),
		metric.WithUnit("{recipient}"),
	)
	if err != nil {
		return nil, err
	}

	entriesEvicted, err := meter.Int64Counter(
		"scheduler_entries_evicted_total",
		metric.WithDescription("Total number of stale event entries evicted before polling"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	recomputeScopeFailure, err := meter.Int64Counter(
		"scheduler_recompute_scope_failures_total",
		metric.WithDescription("Total number of scopes whose daily recompute failed"),
		metric.WithUnit("{scope}"),
	)
	if err != nil {
		return nil, err
	}

	pollDuration, err := meter.Float64Histogram(
		"scheduler_poll_duration_seconds",
		metric.WithDescription("Duration of one due-item poll tick"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	recomputeDuration, err := meter.Float64Histogram(
		"scheduler_recompute_duration_seconds",
		metric.WithDescription("Duration of one daily recompute run"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerMetrics{
		eventsFired:           eventsFired,
		dispatchFailures:      dispatchFailures,
		recipientFailures:     recipientFailures,
		entriesEvicted:        entriesEvicted,
		recomputeScopeFailure: recomputeScopeFailure,
		pollDuration:          pollDuration,
		recomputeDuration:     recomputeDuration,
	}, nil
}

func (m *SchedulerMetrics) RecordEventFired(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.eventsFired.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *SchedulerMetrics) RecordDispatchFailure(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.dispatchFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *SchedulerMetrics) RecordRecipientFailures(ctx context.Context, kind string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.recipientFailures.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *SchedulerMetrics) RecordEvicted(ctx context.Context, kind string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.entriesEvicted.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *SchedulerMetrics) RecordRecomputeScopeFailure(ctx context.Context, scope string) {
	if m == nil {
		return
	}
	m.recomputeScopeFailure.Add(ctx, 1, metric.WithAttributes(
		attribute.String("scope", scope),
	))
}

func (m *SchedulerMetrics) RecordPollDuration(ctx context.Context, kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.pollDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *SchedulerMetrics) RecordRecomputeDuration(ctx context.Context, d time.Duration) {
	if m == nil {
		return
	}
	m.recomputeDuration.Record(ctx, d.Seconds())
}
