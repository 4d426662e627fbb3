package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
	mockcore "github.com/mayankmishra1802/imagify/mocks/port/core"
	mockpersistence "github.com/mayankmishra1802/imagify/mocks/port/persistence"
)

func storedUser(t *testing.T, password string, balance int64) *entity.User {
	t.Helper()

	mockTimeProvider := new(mockcore.MockTimeProvider)
	mockTimeProvider.On("Now").Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	user, err := entity.NewUser("Alice", "a@x.com", password, balance, mockTimeProvider)
	assert.NoError(t, err)
	user.ID = 7
	return user
}

func TestUserUseCase_Login(t *testing.T) {
	t.Run("valid credentials return token and balance", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockTokenIssuer := new(mockcore.MockTokenIssuer)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockLogger := new(mockcore.MockLogger)

		mockLogger.On("Info", "User logged in", mock.Anything).Return()
		mockUserRepo.On("GetByEmail", ctx, "a@x.com").Return(storedUser(t, "pw123", 5), nil)
		mockTokenIssuer.On("Issue", uint64(7)).Return("signed-token", nil)

		useCase := NewUserUseCase(mockUserRepo, mockTokenIssuer, mockTimeProvider, mockLogger, 5)

		result, err := useCase.Login(ctx, "a@x.com", "pw123")

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, "Alice", result.Name)
		assert.Equal(t, int64(5), result.CreditBalance)

		mockUserRepo.AssertExpectations(t)
		mockTokenIssuer.AssertExpectations(t)
	})

	t.Run("unknown email fails with not found", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockTokenIssuer := new(mockcore.MockTokenIssuer)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockLogger := new(mockcore.MockLogger)

		mockLogger.On("Warn", "Login rejected: unknown email", mock.Anything).Return()
		mockUserRepo.On("GetByEmail", ctx, "nobody@x.com").Return(nil, errs.ErrUserNotFound)

		useCase := NewUserUseCase(mockUserRepo, mockTokenIssuer, mockTimeProvider, mockLogger, 5)

		result, err := useCase.Login(ctx, "nobody@x.com", "pw123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		mockTokenIssuer.AssertNotCalled(t, "Issue")
	})

	t.Run("wrong password fails with invalid credentials", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockTokenIssuer := new(mockcore.MockTokenIssuer)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockLogger := new(mockcore.MockLogger)

		mockLogger.On("Warn", "Login rejected: password mismatch", mock.Anything).Return()
		mockUserRepo.On("GetByEmail", ctx, "a@x.com").Return(storedUser(t, "pw123", 5), nil)

		useCase := NewUserUseCase(mockUserRepo, mockTokenIssuer, mockTimeProvider, mockLogger, 5)

		result, err := useCase.Login(ctx, "a@x.com", "wrong")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		mockTokenIssuer.AssertNotCalled(t, "Issue")
	})

	t.Run("missing details rejected without lookup", func(t *testing.T) {
		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockTokenIssuer := new(mockcore.MockTokenIssuer)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockLogger := new(mockcore.MockLogger)

		useCase := NewUserUseCase(mockUserRepo, mockTokenIssuer, mockTimeProvider, mockLogger, 5)

		result, err := useCase.Login(context.Background(), "", "pw123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		mockUserRepo.AssertNotCalled(t, "GetByEmail")
	})
}
