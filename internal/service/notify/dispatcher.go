package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
	"github.com/4imn/Sadeqi-backend/internal/observability/metrics"
	"github.com/4imn/Sadeqi-backend/internal/observability/tracing"
)

const defaultSendTimeout = 10 * time.Second

// Dispatcher adapts fired scheduler events into push-transport calls.
// It resolves the audience, builds the payload, and aggregates
// per-recipient failures without aborting the batch. Delivery outcome
// never influences whether an event counts as fired.
type Dispatcher struct {
	devices          domain.DeviceStore
	sender           domain.PushSender
	sendTimeout      time.Duration
	schedulerMetrics *metrics.SchedulerMetrics
}

func NewDispatcher(
	devices domain.DeviceStore,
	sender domain.PushSender,
	sendTimeout time.Duration,
	schedulerMetrics *metrics.SchedulerMetrics,
) *Dispatcher {
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}
	return &Dispatcher{
		devices:          devices,
		sender:           sender,
		sendTimeout:      sendTimeout,
		schedulerMetrics: schedulerMetrics,
	}
}

// DispatchPrayer notifies every active device in the event's scope.
func (d *Dispatcher) DispatchPrayer(ctx context.Context, fired domain.FiredEvent) (*domain.PushReport, error) {
	devices, err := d.devices.FindActiveByCountry(ctx, fired.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve audience for scope %s: %w", fired.Scope, err)
	}

	tokens := collectTokens(devices)
	if len(tokens) == 0 {
		slog.InfoContext(ctx, "no active devices for scope",
			slog.String("scope", fired.Scope),
			slog.String("label", fired.Label),
		)
		return &domain.PushReport{}, nil
	}

	label := strings.ToUpper(fired.Label)
	n := domain.Notification{
		Type:  domain.NotificationPrayer,
		Title: fmt.Sprintf("It's time for %s prayer", label),
		Body:  fmt.Sprintf("The %s prayer time is %s", label, fired.Time.UTC().Format("03:04 PM")),
		Data: map[string]string{
			"type":      "PRAYER_TIME",
			"prayer":    fired.Label,
			"country":   fired.Scope,
			"date":      fired.Day,
			"timestamp": strconv.FormatInt(fired.Time.Unix(), 10),
		},
	}

	return d.send(ctx, tokens, n)
}

// DispatchMedicine notifies the reminder owner's active devices.
func (d *Dispatcher) DispatchMedicine(ctx context.Context, reminder *domain.MedicineReminder, at time.Time) (*domain.PushReport, error) {
	devices, err := d.devices.FindActiveByUser(ctx, reminder.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve devices for user %s: %w", reminder.UserID, err)
	}

	tokens := collectTokens(devices)
	if len(tokens) == 0 {
		slog.InfoContext(ctx, "no active devices for user",
			slog.String("user_id", reminder.UserID),
			slog.String("reminder_id", reminder.ID),
		)
		return &domain.PushReport{}, nil
	}

	n := domain.Notification{
		Type:  domain.NotificationMedicine,
		Title: fmt.Sprintf("Medicine reminder: %s", reminder.Name),
		Body:  fmt.Sprintf("It's time to take %s", reminder.Name),
		Data: map[string]string{
			"type":        "MEDICINE_REMINDER",
			"reminder_id": reminder.ID,
			"timestamp":   strconv.FormatInt(at.Unix(), 10),
		},
	}

	return d.send(ctx, tokens, n)
}

func (d *Dispatcher) send(ctx context.Context, tokens []string, n domain.Notification) (*domain.PushReport, error) {
	ctx, span := tracing.StartDispatchSpan(ctx, n.Type.String(), len(tokens))
	defer span.End()

	// One unreachable recipient must not stall the batch.
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	report, err := d.sender.SendMulticast(sendCtx, tokens, n)
	if err != nil {
		d.schedulerMetrics.RecordDispatchFailure(ctx, n.Type.String())
		return nil, fmt.Errorf("multicast send failed: %w", err)
	}

	if report.FailureCount > 0 {
		d.schedulerMetrics.RecordRecipientFailures(ctx, n.Type.String(), report.FailureCount)
		slog.WarnContext(ctx, "some recipients could not be delivered to",
			slog.String("kind", n.Type.String()),
			slog.Int("success_count", report.SuccessCount),
			slog.Int("failure_count", report.FailureCount),
		)
	} else {
		slog.DebugContext(ctx, "notification dispatched",
			slog.String("kind", n.Type.String()),
			slog.Int("recipient_count", len(tokens)),
		)
	}

	return report, nil
}

func collectTokens(devices []domain.Device) []string {
	tokens := make([]string, 0, len(devices))
	for _, dev := range devices {
		token := strings.TrimSpace(dev.FCMToken)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
