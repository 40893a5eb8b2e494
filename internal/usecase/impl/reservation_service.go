package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "shareplate/internal/delivery/context"
	"shareplate/internal/domain/entity"
	domainerrors "shareplate/internal/domain/errors"
	"shareplate/internal/domain/repository"
	"shareplate/internal/domain/service"
	"shareplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reservationService implements the ReservationUsecase interface.
type reservationService struct {
	txManager       repository.TransactionManager
	reservationRepo repository.ReservationRepository
	eventPublisher  service.EventPublisher
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ReservationRepo repository.ReservationRepository
	EventPublisher  service.EventPublisher
	Logger          *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		txManager:       params.TxManager,
		reservationRepo: params.ReservationRepo,
		eventPublisher:  params.EventPublisher,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create reserves a food offer. The reservation insert and the offer's
// reserved flag flip happen in one transaction.
func (srv *reservationService) Create(ctx context.Context, input *usecase.CreateReservationInput) (*entity.Reservation, error) {
	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	reservation := &entity.Reservation{
		Timestamp:   timestamp,
		ReservedBy:  input.ReservedBy,
		FoodOfferID: input.FoodOfferID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReservationRepo().Create(ctx, reservation); err != nil {
			return errors.Wrap(err, "failed to create reservation")
		}

		if input.FoodOfferID != nil {
			reserved := true
			if err := repoFactory.FoodOfferRepo().UpdateByID(ctx, *input.FoodOfferID, &repository.FoodOfferPatch{Reserved: &reserved}); err != nil {
				if errors.Is(err, repository.ErrFoodOfferNotFound) {
					return domainerrors.ErrFoodOfferNotFound
				}

				return errors.Wrap(err, "failed to mark offer as reserved")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute reservation transaction", slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrFoodOfferNotFound) {
			return nil, domainerrors.ErrFoodOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to execute reservation transaction")
	}

	srv.publishCreatedEvent(ctx, reservation)

	return reservation, nil
}

// publishCreatedEvent emits a reservation-created event. Publishing failures
// never fail the reservation itself.
func (srv *reservationService) publishCreatedEvent(ctx context.Context, reservation *entity.Reservation) {
	event := &service.ReservationEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		ReservationID: reservation.ID.String(),
		ReservedBy:    reservation.ReservedBy.String(),
		Timestamp:     reservation.Timestamp.UTC().Format(time.RFC3339),
	}
	if reservation.FoodOfferID != nil {
		event.FoodOfferID = reservation.FoodOfferID.String()
	}

	if err := srv.eventPublisher.PublishReservationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish reservation event",
			slog.Any("reservationID", reservation.ID),
			slog.Any("error", err),
		)
	}
}

// GetByID retrieves a single reservation.
func (srv *reservationService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	reservation, err := srv.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, domainerrors.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by id")
	}

	return reservation, nil
}

// ListByReserver retrieves all reservations made by the given user.
func (srv *reservationService) ListByReserver(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	reservations, err := srv.reservationRepo.FindByReserver(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations by reserver")
	}

	return reservations, nil
}

// Update applies a partial update to a reservation.
func (srv *reservationService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateReservationInput) error {
	patch := &repository.ReservationPatch{
		TimeOfPickup: input.TimeOfPickup,
		Accepted:     input.Accepted,
	}

	if err := srv.reservationRepo.UpdateByID(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return domainerrors.ErrReservationNotFound
		}

		return errors.Wrap(err, "failed to update reservation")
	}

	return nil
}

// Delete removes a reservation and frees the attached offer.
func (srv *reservationService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservationRepo := repoFactory.ReservationRepo()

		reservation, err := reservationRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReservationNotFound) {
				return domainerrors.ErrReservationNotFound
			}

			return errors.Wrap(err, "failed to find reservation by id")
		}

		if err := reservationRepo.DeleteByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete reservation")
		}

		if reservation.FoodOfferID != nil {
			reserved := false
			if err := repoFactory.FoodOfferRepo().UpdateByID(ctx, *reservation.FoodOfferID, &repository.FoodOfferPatch{Reserved: &reserved}); err != nil {
				// Offer may have been deleted independently.
				if !errors.Is(err, repository.ErrFoodOfferNotFound) {
					return errors.Wrap(err, "failed to free reserved offer")
				}
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrReservationNotFound) {
			return domainerrors.ErrReservationNotFound
		}
		srv.log(ctx).Error("Failed to execute reservation delete transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute reservation delete transaction")
	}

	return nil
}
