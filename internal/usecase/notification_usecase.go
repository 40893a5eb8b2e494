package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PushNotificationInput identifies the food offer whose creator should be
// notified, plus the notification content shown on the device.
type PushNotificationInput struct {
	OfferID uuid.UUID
	Title   string
	Body    string
}

// NotificationUsecase defines the push notification dispatch operation.
//
// SendOfferNotification never propagates dispatch failures to the caller:
// lookup misses, missing creators, absent device tokens and provider errors
// are logged and absorbed, and the method returns nil. Callers can treat
// dispatch as fire-and-forget.
type NotificationUsecase interface {
	SendOfferNotification(ctx context.Context, input *PushNotificationInput) error
}
