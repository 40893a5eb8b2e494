package postgres

import (
	"context"

	"shareplate/internal/domain/entity"
	domainerrors "shareplate/internal/domain/errors"
	"shareplate/internal/domain/repository"
	"shareplate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reservationRepository implements the repository.ReservationRepository interface.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{
		db: db,
	}
}

// Create persists a new reservation.
func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Create(reservationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFoodOfferNotFound.WrapMessage("invalid offer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required reservation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	// Update the entity with generated values
	reservation.ID = reservationM.ID
	reservation.CreatedAt = reservationM.CreatedAt
	reservation.UpdatedAt = reservationM.UpdatedAt

	return nil
}

// FindByID retrieves a single reservation by its unique ID.
func (repo *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by id")
	}

	return toReservationDomain(&reservationM), nil
}

// FindByReserver retrieves all reservations made by the given user.
func (repo *reservationRepository) FindByReserver(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("reserved_by = ?", userID).
		Order("created_at DESC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by reserver")
	}

	reservations := make([]*entity.Reservation, 0, len(reservationModels))
	for _, reservationM := range reservationModels {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations, nil
}

// FindByOffer retrieves the reservation attached to the given offer.
func (repo *reservationRepository) FindByOffer(ctx context.Context, offerID uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("food_offer_id = ?", offerID).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by offer")
	}

	return toReservationDomain(&reservationM), nil
}

// UpdateByID applies a partial update to a reservation. Nil patch fields are untouched.
func (repo *reservationRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch *repository.ReservationPatch) error {
	updates := map[string]any{}
	if patch != nil {
		if patch.TimeOfPickup != nil {
			updates["time_of_pickup"] = *patch.TimeOfPickup
		}
		if patch.Accepted != nil {
			updates["accepted"] = *patch.Accepted
		}
	}

	if len(updates) == 0 {
		_, err := repo.FindByID(ctx, id)

		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update reservation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

// DeleteByID removes a reservation by its ID.
func (repo *reservationRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReservationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete reservation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toReservationDomain converts a GORM ReservationModel to a domain Reservation entity.
func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	if data == nil {
		return nil
	}

	return &entity.Reservation{
		ID:           data.ID,
		Timestamp:    data.Timestamp,
		TimeOfPickup: data.TimeOfPickup,
		Accepted:     data.Accepted,
		ReservedBy:   data.ReservedBy,
		FoodOfferID:  data.FoodOfferID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromReservationDomain converts a domain Reservation entity to a GORM ReservationModel.
func fromReservationDomain(data *entity.Reservation) *model.ReservationModel {
	if data == nil {
		return nil
	}

	return &model.ReservationModel{
		ID:           data.ID,
		Timestamp:    data.Timestamp,
		TimeOfPickup: data.TimeOfPickup,
		Accepted:     data.Accepted,
		ReservedBy:   data.ReservedBy,
		FoodOfferID:  data.FoodOfferID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
