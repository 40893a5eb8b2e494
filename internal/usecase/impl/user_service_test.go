package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shareplate/internal/domain/entity"
	domainerrors "shareplate/internal/domain/errors"
	"shareplate/internal/domain/repository"
	mockRepo "shareplate/internal/mocks/repository"
	mockSvc "shareplate/internal/mocks/service"
	"shareplate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// createTestUserService builds a userService with all dependencies mocked.
func createTestUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return svc, txManager, userRepo, hasher, tokenService
}

// passThroughTx makes the transaction manager run the given function against
// the provided repository mocks, as a committed transaction would.
func passThroughTx(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo *mockRepo.MockUserRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestUserService_Signup(t *testing.T) {
	ctx := context.Background()

	input := &usecase.SignupInput{
		Email:     "alice@example.com",
		Password:  "plaintext",
		FirstName: "Alice",
		LastName:  "Smith",
		Address:   "Rachelsmolen 1, Eindhoven",
	}

	t.Run("creates the user when the email is free", func(t *testing.T) {
		svc, txManager, userRepo, hasher, _ := createTestUserService(t)
		passThroughTx(t, txManager, userRepo)

		hasher.EXPECT().Hash("plaintext").Return("hashed-password", nil)
		userRepo.EXPECT().CountByEmail(ctx, "alice@example.com").Return(int64(0), nil)
		userRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(
			func(_ context.Context, user *entity.User) error {
				user.ID = uuid.New()

				return nil
			})

		output, err := svc.Signup(ctx, input)

		require.NoError(t, err)
		require.NotNil(t, output)
		assert.NotEqual(t, uuid.Nil, output.User.ID)
		assert.Equal(t, "alice@example.com", output.User.Email)
		assert.Equal(t, "hashed-password", output.User.PasswordHash)
		assert.Equal(t, "Alice", output.User.FirstName)
	})

	t.Run("rejects a taken email with 422", func(t *testing.T) {
		svc, txManager, userRepo, hasher, _ := createTestUserService(t)
		passThroughTx(t, txManager, userRepo)

		hasher.EXPECT().Hash("plaintext").Return("hashed-password", nil)
		userRepo.EXPECT().CountByEmail(ctx, "alice@example.com").Return(int64(1), nil)

		output, err := svc.Signup(ctx, input)

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 422, appErr.HTTPCode())
		assert.Equal(t, "Email is already in use", appErr.Message())
	})

	t.Run("fails when hashing fails", func(t *testing.T) {
		svc, _, _, hasher, _ := createTestUserService(t)

		hasher.EXPECT().Hash("plaintext").Return("", errors.New("bcrypt exploded"))

		output, err := svc.Signup(ctx, input)

		require.Error(t, err)
		assert.Nil(t, output)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	storedUser := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: "hashed-password",
		FirstName:    "Alice",
	}

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		svc, _, userRepo, hasher, tokenService := createTestUserService(t)

		userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(storedUser, nil)
		hasher.EXPECT().Check("plaintext", "hashed-password").Return(true)
		tokenService.EXPECT().GenerateToken(mock.Anything).RunAndReturn(
			func(identity entity.Identity) (string, error) {
				assert.Equal(t, userID.String(), identity.Subject)
				assert.Equal(t, "alice@example.com", identity.Email)

				return "signed-token", nil
			})

		output, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "plaintext"})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", output.Token)
		assert.Equal(t, storedUser, output.User)
	})

	t.Run("rejects an unknown email with 401", func(t *testing.T) {
		svc, _, userRepo, _, _ := createTestUserService(t)

		userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		output, err := svc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "plaintext"})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.HTTPCode())
	})

	t.Run("rejects a wrong password with the same 401", func(t *testing.T) {
		svc, _, userRepo, hasher, _ := createTestUserService(t)

		userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(storedUser, nil)
		hasher.EXPECT().Check("wrong", "hashed-password").Return(false)

		output, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.HTTPCode())
	})

	t.Run("fails when token generation fails", func(t *testing.T) {
		svc, _, userRepo, hasher, tokenService := createTestUserService(t)

		userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(storedUser, nil)
		hasher.EXPECT().Check("plaintext", "hashed-password").Return(true)
		tokenService.EXPECT().GenerateToken(mock.Anything).Return("", errors.New("no signing key"))

		output, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "plaintext"})

		require.Error(t, err)
		assert.Nil(t, output)
	})
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns the user", func(t *testing.T) {
		svc, _, userRepo, _, _ := createTestUserService(t)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, FirstName: "Alice"}, nil)

		user, err := svc.GetUser(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("maps a missing user to not found", func(t *testing.T) {
		svc, _, userRepo, _, _ := createTestUserService(t)

		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		user, err := svc.GetUser(ctx, userID)

		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_GetUserFirstName(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	svc, _, userRepo, _, _ := createTestUserService(t)

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, FirstName: "Alice"}, nil)

	firstName, err := svc.GetUserFirstName(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Alice", firstName)
}

func TestUserService_UpdateDeviceToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("stores the new token", func(t *testing.T) {
		svc, _, userRepo, _, _ := createTestUserService(t)

		userRepo.EXPECT().UpdateDeviceToken(ctx, userID, "fcm-token-1").Return(nil)

		err := svc.UpdateDeviceToken(ctx, userID, "fcm-token-1")

		require.NoError(t, err)
	})

	t.Run("maps a missing user to not found", func(t *testing.T) {
		svc, _, userRepo, _, _ := createTestUserService(t)

		userRepo.EXPECT().UpdateDeviceToken(ctx, userID, "fcm-token-1").Return(repository.ErrUserNotFound)

		err := svc.UpdateDeviceToken(ctx, userID, "fcm-token-1")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.HTTPCode())
	})
}
