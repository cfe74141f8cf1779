package push

import (
	"context"
	"log/slog"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

type noopSender struct {
	logger *slog.Logger
}

// NewNoopSender returns a sender that logs instead of delivering.
// Used when no FCM credentials are configured, e.g. local runs.
func NewNoopSender(logger *slog.Logger) domain.PushSender {
	return &noopSender{logger: logger}
}

func (n *noopSender) SendMulticast(ctx context.Context, tokens []string, notification domain.Notification) (*domain.PushReport, error) {
	n.logger.InfoContext(ctx, "push delivery skipped: no sender configured",
		slog.Int("recipients", len(tokens)),
		slog.String("title", notification.Title))
	return &domain.PushReport{SuccessCount: len(tokens)}, nil
}
