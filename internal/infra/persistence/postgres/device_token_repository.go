package postgres

import (
	"context"

	"shareplate/internal/domain/entity"
	domainerrors "shareplate/internal/domain/errors"
	"shareplate/internal/domain/repository"
	"shareplate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceTokenRepository implements the repository.DeviceTokenRepository interface.
type deviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository is the constructor for deviceTokenRepository.
func NewDeviceTokenRepository(db *gorm.DB) repository.DeviceTokenRepository {
	return &deviceTokenRepository{
		db: db,
	}
}

// Create persists a new device token registration.
func (repo *deviceTokenRepository) Create(ctx context.Context, token *entity.DeviceToken) error {
	tokenM := fromDeviceTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Token already registered, surface the existing row instead.
			existing, findErr := repo.FindByToken(ctx, token.Token)
			if findErr != nil {
				return findErr
			}
			*token = *existing

			return nil
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing device token value")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindByToken retrieves a registration by its token value.
func (repo *deviceTokenRepository) FindByToken(ctx context.Context, token string) (*entity.DeviceToken, error) {
	var tokenM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find device token")
	}

	return toDeviceTokenDomain(&tokenM), nil
}

// --- Mapper Functions ---

// toDeviceTokenDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toDeviceTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:        data.ID,
		Token:     data.Token,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceTokenDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromDeviceTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:        data.ID,
		Token:     data.Token,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
