package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
	coreport "github.com/mayankmishra1802/imagify/internal/domain/port/core"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements the user persistence port using GORM.
// Balance mutations run as single conditional UPDATE statements so that
// concurrent requests can never interleave a read-then-write.
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:            userModel.ID,
		Name:          userModel.Name,
		Email:         userModel.Email,
		PasswordHash:  userModel.PasswordHash,
		CreditBalance: userModel.CreditBalance,
		CreatedAt:     userModel.CreatedAt,
		UpdatedAt:     userModel.UpdatedAt,
	}
}

// entityToModel converts a user entity to a model
func (r *UserRepository) entityToModel(user *entity.User) *model.User {
	return &model.User{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		CreditBalance: user.CreditBalance,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}

	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create persists a new user and fills in the generated id
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating user", map[string]any{
		"email": user.Email,
	})

	userModel := r.entityToModel(user)
	result := r.db.WithContext(ctx).Create(userModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate email on registration", map[string]any{
				"email": user.Email,
			})
			return errs.ErrDuplicateEmail
		}
		return r.handleDatabaseError("creating user", result.Error, 0)
	}

	user.ID = userModel.ID
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError("getting user by email", result.Error, 0)
	}

	return r.modelToEntity(&userModel), nil
}

// AddCredits atomically increments the user's balance
func (r *UserRepository) AddCredits(ctx context.Context, id uint64, credits int64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"credit_balance": gorm.Expr("credit_balance + ?", credits),
			"updated_at":     r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("adding credits", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Info("Credits added", map[string]any{
		"user_id": id,
		"credits": credits,
	})
	return nil
}

// DebitCredit decrements the balance by one in a single conditional UPDATE.
// The WHERE clause refuses the debit when the balance is not positive, which
// closes the race between two requests spending the same last credit.
func (r *UserRepository) DebitCredit(ctx context.Context, id uint64) (int64, error) {
	var newBalance int64
	result := r.db.WithContext(ctx).Raw(
		"UPDATE users SET credit_balance = credit_balance - 1, updated_at = ? "+
			"WHERE id = ? AND credit_balance > 0 RETURNING credit_balance",
		r.timeProvider.Now(), id,
	).Scan(&newBalance)

	if result.Error != nil {
		return 0, r.handleDatabaseError("debiting credit", result.Error, id)
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing user from a refused debit
		user, err := r.GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		r.logger.Warn("Debit refused, no credits left", map[string]any{
			"user_id": id,
			"balance": user.CreditBalance,
		})
		return 0, errs.NewInsufficientCreditsError(id, user.CreditBalance)
	}

	return newBalance, nil
}
