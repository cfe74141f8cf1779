package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const schedulerTracerName = "github.com/4imn/Sadeqi-backend/internal/scheduler"

func SchedulerTracer() trace.Tracer {
	return otel.Tracer(schedulerTracerName)
}

func StartPollSpan(ctx context.Context, kind string, from, to time.Time) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.poll",
		trace.WithAttributes(
			attribute.String("poll.kind", kind),
			attribute.String("poll.window_from", from.Format(time.RFC3339)),
			attribute.String("poll.window_to", to.Format(time.RFC3339)),
		),
	)
}

func StartRecomputeSpan(ctx context.Context, day string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.daily_recompute",
		trace.WithAttributes(
			attribute.String("recompute.day", day),
		),
	)
}

func StartDispatchSpan(ctx context.Context, kind string, recipients int) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.dispatch",
		trace.WithAttributes(
			attribute.String("dispatch.kind", kind),
			attribute.Int("dispatch.recipients", recipients),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordPollResult(span trace.Span, fired, evicted int, err error) {
	span.SetAttributes(
		attribute.Int("poll.fired_count", fired),
		attribute.Int("poll.evicted_count", evicted),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordRecomputeResult(span trace.Span, succeeded, failed int, err error) {
	span.SetAttributes(
		attribute.Int("recompute.succeeded_scopes", succeeded),
		attribute.Int("recompute.failed_scopes", failed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
