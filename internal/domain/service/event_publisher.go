package service

import (
	"context"
)

// ReservationEvent is published whenever a reservation is created, for
// consumption by downstream processors (statistics, moderation, mail).
type ReservationEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing.
	ReservationID string `json:"reservation_id"`
	FoodOfferID   string `json:"food_offer_id,omitempty"`
	ReservedBy    string `json:"reserved_by"`
	Timestamp     string `json:"timestamp"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishReservationEvent publishes a reservation event for async processing.
	PublishReservationEvent(ctx context.Context, event *ReservationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
