package notification

import (
	"context"

	"shareplate/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// Firebase limits multicast sends to 500 tokens per request.
const maxTokensPerRequest = 500

type firebaseSender struct {
	client *messaging.Client
}

// NewFirebaseSender creates a new Firebase push sender instance
func NewFirebaseSender(ctx context.Context, credentialsPath string) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	return &firebaseSender{
		client: client,
	}, nil
}

// Send delivers the message to each device token and reports the per-token outcome.
func (s *firebaseSender) Send(ctx context.Context, msg *service.PushMessage, tokens ...string) (*service.PushResult, error) {
	if len(tokens) == 0 {
		return &service.PushResult{}, nil
	}
	if len(tokens) > maxTokensPerRequest {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxTokensPerRequest)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: map[string]string{
			"topic": msg.Topic,
		},
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "send multicast notification")
	}

	result := &service.PushResult{
		Sent:   make([]string, 0, response.SuccessCount),
		Failed: make([]service.PushFailure, 0, response.FailureCount),
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			result.Sent = append(result.Sent, tokens[idx])

			continue
		}

		reason := "send failed"
		switch {
		case messaging.IsInvalidArgument(sendResponse.Error):
			reason = "invalid token"
		case messaging.IsUnregistered(sendResponse.Error):
			reason = "unregistered token"
		}
		result.Failed = append(result.Failed, service.PushFailure{
			Token:  tokens[idx],
			Reason: reason,
		})
	}

	return result, nil
}
