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

// foodOfferRepository implements the repository.FoodOfferRepository interface.
type foodOfferRepository struct {
	db *gorm.DB
}

// NewFoodOfferRepository is the constructor for foodOfferRepository.
func NewFoodOfferRepository(db *gorm.DB) repository.FoodOfferRepository {
	return &foodOfferRepository{
		db: db,
	}
}

// Create persists a new food offer.
func (repo *foodOfferRepository) Create(ctx context.Context, offer *entity.FoodOffer) error {
	offerM := fromFoodOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid creator reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required offer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food offer")
	}

	// Update the entity with generated values
	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// FindByID retrieves a single food offer by its unique ID.
func (repo *foodOfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodOffer, error) {
	var offerM model.FoodOfferModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find food offer by id")
	}

	return toFoodOfferDomain(&offerM), nil
}

// Find retrieves all food offers, newest first.
func (repo *foodOfferRepository) Find(ctx context.Context) ([]*entity.FoodOffer, error) {
	var offerModels []*model.FoodOfferModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food offers")
	}

	offers := make([]*entity.FoodOffer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toFoodOfferDomain(offerM))
	}

	return offers, nil
}

// Count returns the total number of food offers.
func (repo *foodOfferRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FoodOfferModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count food offers")
	}

	return count, nil
}

// FindByCreator retrieves all offers created by the given user.
func (repo *foodOfferRepository) FindByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.FoodOffer, error) {
	var offerModels []*model.FoodOfferModel

	if err := repo.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food offers by creator")
	}

	offers := make([]*entity.FoodOffer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toFoodOfferDomain(offerM))
	}

	return offers, nil
}

// UpdateByID applies a partial update to an offer. Nil patch fields are untouched.
func (repo *foodOfferRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch *repository.FoodOfferPatch) error {
	updates := buildFoodOfferUpdates(patch)
	if len(updates) == 0 {
		// Nothing to change, but the offer must still exist.
		_, err := repo.FindByID(ctx, id)

		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.FoodOfferModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid creator reference")
		}

		return errors.Wrap(result.Error, "failed to update food offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodOfferNotFound
	}

	return nil
}

// ReplaceByID overwrites all mutable fields of an offer.
func (repo *foodOfferRepository) ReplaceByID(ctx context.Context, id uuid.UUID, offer *entity.FoodOffer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FoodOfferModel{}).
		Where("id = ?", id).
		Select("name", "description", "image", "location", "datetime", "reserved", "picked_up", "created_by").
		Updates(map[string]any{
			"name":        offer.Name,
			"description": offer.Description,
			"image":       offer.Image,
			"location":    offer.Location,
			"datetime":    offer.Datetime,
			"reserved":    offer.Reserved,
			"picked_up":   offer.PickedUp,
			"created_by":  offer.CreatedBy,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid creator reference")
		}

		return errors.Wrap(result.Error, "failed to replace food offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodOfferNotFound
	}

	return nil
}

// DeleteByID removes an offer by its ID.
func (repo *foodOfferRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FoodOfferModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete food offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodOfferNotFound
	}

	return nil
}

// buildFoodOfferUpdates turns a patch into a GORM updates map, skipping nil fields.
func buildFoodOfferUpdates(patch *repository.FoodOfferPatch) map[string]any {
	updates := map[string]any{}
	if patch == nil {
		return updates
	}

	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.Datetime != nil {
		updates["datetime"] = *patch.Datetime
	}
	if patch.Reserved != nil {
		updates["reserved"] = *patch.Reserved
	}
	if patch.PickedUp != nil {
		updates["picked_up"] = *patch.PickedUp
	}
	if patch.CreatedBy != nil {
		updates["created_by"] = *patch.CreatedBy
	}

	return updates
}

// --- Mapper Functions ---

// toFoodOfferDomain converts a GORM FoodOfferModel to a domain FoodOffer entity.
func toFoodOfferDomain(data *model.FoodOfferModel) *entity.FoodOffer {
	if data == nil {
		return nil
	}

	return &entity.FoodOffer{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
		Location:    data.Location,
		Datetime:    data.Datetime,
		Reserved:    data.Reserved,
		PickedUp:    data.PickedUp,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromFoodOfferDomain converts a domain FoodOffer entity to a GORM FoodOfferModel.
func fromFoodOfferDomain(data *entity.FoodOffer) *model.FoodOfferModel {
	if data == nil {
		return nil
	}

	return &model.FoodOfferModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Image:       data.Image,
		Location:    data.Location,
		Datetime:    data.Datetime,
		Reserved:    data.Reserved,
		PickedUp:    data.PickedUp,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
