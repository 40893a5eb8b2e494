// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// CountByEmail returns the number of users registered with the given email.
func (repo *userRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users by email")
	}

	return count, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateDeviceToken replaces the stored push token of the given user.
func (repo *userRepository) UpdateDeviceToken(ctx context.Context, userID uuid.UUID, deviceToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("device_token", deviceToken)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindDeviceTokenByID returns the stored push token of the given user.
func (repo *userRepository) FindDeviceTokenByID(ctx context.Context, userID uuid.UUID) (string, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Select("device_token").
		Where("id = ?", userID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to find device token by user id")
	}

	return userM.DeviceToken, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Address:      data.Address,
		DeviceToken:  data.DeviceToken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Address:      data.Address,
		DeviceToken:  data.DeviceToken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
