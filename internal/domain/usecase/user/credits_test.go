package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
	mockcore "github.com/mayankmishra1802/imagify/mocks/port/core"
	mockpersistence "github.com/mayankmishra1802/imagify/mocks/port/persistence"
)

func TestUserUseCase_Credits(t *testing.T) {
	t.Run("returns balance and name", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockTokenIssuer := new(mockcore.MockTokenIssuer)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockLogger := new(mockcore.MockLogger)

		mockUserRepo.On("GetByID", ctx, uint64(7)).Return(&entity.User{
			ID:            7,
			Name:          "Alice",
			CreditBalance: 105,
		}, nil)

		useCase := NewUserUseCase(mockUserRepo, mockTokenIssuer, mockTimeProvider, mockLogger, 5)

		result, err := useCase.Credits(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, "Alice", result.Name)
		assert.Equal(t, int64(105), result.Credits)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("user vanished between auth and lookup", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepo := new(mockpersistence.MockUserRepository)
		mockTokenIssuer := new(mockcore.MockTokenIssuer)
		mockTimeProvider := new(mockcore.MockTimeProvider)
		mockLogger := new(mockcore.MockLogger)

		mockLogger.On("Error", "Failed to get user credits", mock.Anything).Return()
		mockUserRepo.On("GetByID", ctx, uint64(9)).Return(nil, errs.ErrUserNotFound)

		useCase := NewUserUseCase(mockUserRepo, mockTokenIssuer, mockTimeProvider, mockLogger, 5)

		result, err := useCase.Credits(ctx, 9)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
