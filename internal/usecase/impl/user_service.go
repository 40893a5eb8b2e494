// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

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

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the complete user registration process.
// The email uniqueness check and the insert run in one transaction so two
// concurrent signups cannot both pass the check.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Address:      input.Address,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		count, err := userRepo.CountByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to count users by email")
		}
		if count > 0 {
			return domainerrors.ErrEmailTaken
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			srv.log(ctx).Warn("Signup rejected, email already in use", slog.String("email", input.Email))

			return nil, err
		}
		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{User: newUser}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			// Unknown email and wrong password are indistinguishable to the caller.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(user.Identity())
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}

// GetUser retrieves a user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// GetUserFirstName retrieves only the first name of a user.
func (srv *userService) GetUserFirstName(ctx context.Context, id uuid.UUID) (string, error) {
	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return "", err
	}

	return user.FirstName, nil
}

// UpdateDeviceToken replaces the push token of an existing user.
func (srv *userService) UpdateDeviceToken(ctx context.Context, userID uuid.UUID, deviceToken string) error {
	srv.log(ctx).Debug("Updating device token", slog.Any("userID", userID))

	if err := srv.userRepo.UpdateDeviceToken(ctx, userID, deviceToken); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Device token update for unknown user", slog.Any("userID", userID))

			return domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to update device token", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update device token")
	}

	return nil
}
