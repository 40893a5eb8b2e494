package service

import (
	"context"
)

// PushMessage is a provider-bound notification value. Topic identifies the
// application the notification originates from; Title and Body form the alert.
type PushMessage struct {
	Topic string
	Title string
	Body  string
}

// PushFailure describes a single device token the provider rejected.
type PushFailure struct {
	Token  string
	Reason string
}

// PushResult distinguishes per-token delivery successes from failures.
// Neither outcome is retried.
type PushResult struct {
	Sent   []string
	Failed []PushFailure
}

// PushSender defines the interface for the external push-notification provider.
type PushSender interface {
	// Send dispatches the message to the given device tokens and reports the
	// per-token outcome. A non-nil error indicates a transport-level failure.
	Send(ctx context.Context, msg *PushMessage, tokens ...string) (*PushResult, error)
}
