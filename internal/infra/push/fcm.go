package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

// multicastLimit is the FCM cap on tokens per multicast call.
const multicastLimit = 500

const androidChannelID = "prayer_reminders"

// FCM delivers notifications through Firebase Cloud Messaging. It
// implements domain.PushSender.
type FCM struct {
	client *messaging.Client
}

func NewFCM(ctx context.Context, credentialsPath string) (*FCM, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize messaging client: %w", err)
	}
	return &FCM{client: client}, nil
}

// SendMulticast fans the notification out to every token, batching at
// the FCM multicast limit. Individual token failures are collected in
// the report; the returned error covers transport-level failure only.
func (f *FCM) SendMulticast(ctx context.Context, tokens []string, n domain.Notification) (*domain.PushReport, error) {
	report := &domain.PushReport{}

	for start := 0; start < len(tokens); start += multicastLimit {
		end := start + multicastLimit
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		resp, err := f.client.SendEachForMulticast(ctx, f.buildMessage(batch, n))
		if err != nil {
			return nil, fmt.Errorf("failed to send multicast: %w", err)
		}

		appendBatchResults(report, batch, resp)
	}
	return report, nil
}

func appendBatchResults(report *domain.PushReport, batch []string, resp *messaging.BatchResponse) {
	report.SuccessCount += resp.SuccessCount
	report.FailureCount += resp.FailureCount
	for i, r := range resp.Responses {
		if r.Error != nil {
			report.Failures = append(report.Failures, domain.PushFailure{
				Token: batch[i],
				Err:   r.Error.Error(),
			})
		}
	}
}

func (f *FCM) buildMessage(tokens []string, n domain.Notification) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: androidChannelID,
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}
}
