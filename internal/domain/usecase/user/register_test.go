package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
	mockcore "github.com/mayankmishra1802/imagify/mocks/port/core"
	mockpersistence "github.com/mayankmishra1802/imagify/mocks/port/persistence"
)

func TestUserUseCase_Register(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates user with signup grant and issues token", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockTokenIssuer := new(mockcore.MockTokenIssuer)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockLogger := new(mockcore.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockLogger.On("Info", "User registered", mock.Anything).Return()

		var created *entity.User
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entity.User)
				created.ID = 7 // simulate the database assigning an id
			}).
			Return(nil)
		mockTokenIssuer.On("Issue", uint64(7)).Return("signed-token", nil)

		useCase := NewUserUseCase(mockUserRepo, mockTokenIssuer, mockTimeProvider, mockLogger, 5)

		result, err := useCase.Register(ctx, "Alice", "a@x.com", "pw123")

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, "Alice", result.Name)
		assert.Equal(t, int64(5), result.CreditBalance)

		// The persisted user carries a hash, not the raw password
		assert.NotEqual(t, "pw123", created.PasswordHash)
		assert.True(t, created.CheckPassword("pw123"))

		mockUserRepo.AssertExpectations(t)
		mockTokenIssuer.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockTokenIssuer := new(mockcore.MockTokenIssuer)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockLogger := new(mockcore.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockLogger.On("Warn", "Registration rejected: email already exists", mock.Anything).Return()
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(errs.ErrDuplicateEmail)

		useCase := NewUserUseCase(mockUserRepo, mockTokenIssuer, mockTimeProvider, mockLogger, 5)

		result, err := useCase.Register(ctx, "Alice", "a@x.com", "pw123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
		mockTokenIssuer.AssertNotCalled(t, "Issue")
	})

	t.Run("rejects missing details without touching the repository", func(t *testing.T) {
		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockTokenIssuer := new(mockcore.MockTokenIssuer)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockLogger := new(mockcore.MockLogger)

		useCase := NewUserUseCase(mockUserRepo, mockTokenIssuer, mockTimeProvider, mockLogger, 5)

		result, err := useCase.Register(context.Background(), "", "a@x.com", "pw123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		mockUserRepo.AssertNotCalled(t, "Create")
	})

	t.Run("surfaces token issuance failure", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockTokenIssuer := new(mockcore.MockTokenIssuer)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockLogger := new(mockcore.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockLogger.On("Error", "Failed to issue session token", mock.Anything).Return()
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		mockTokenIssuer.On("Issue", mock.Anything).Return("", errors.New("key unavailable"))

		useCase := NewUserUseCase(mockUserRepo, mockTokenIssuer, mockTimeProvider, mockLogger, 5)

		result, err := useCase.Register(ctx, "Alice", "a@x.com", "pw123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
