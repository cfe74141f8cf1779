package domain

import "context"

//go:generate mockgen -source=push.go -destination=push_mock.go -package=domain

// PushFailure records a single recipient that could not be delivered
// to. Individual failures never fail the batch.
type PushFailure struct {
	Token string
	Err   string
}

// PushReport is the per-recipient outcome of one multicast send.
type PushReport struct {
	SuccessCount int
	FailureCount int
	Failures     []PushFailure
}

// PushSender is the outbound push-delivery transport. Implementations
// must report per-token failures in the returned report and reserve
// the error return for whole-batch transport failures.
type PushSender interface {
	SendMulticast(ctx context.Context, tokens []string, n Notification) (*PushReport, error)
}
