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

// TransactionRepository implements the ledger persistence port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// wrapDatabaseError separates connectivity failures from other database
// errors so callers surface the right status
func (r *TransactionRepository) wrapDatabaseError(err error) error {
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(txnModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:      txnModel.ID,
		UserID:  txnModel.UserID,
		Plan:    entity.PlanID(txnModel.Plan),
		Amount:  txnModel.Amount,
		Credits: txnModel.Credits,
		Payment: txnModel.Payment,
		Date:    txnModel.Date,
	}
}

// Create persists a new unpaid ledger row
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating ledger row", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"plan":           string(transaction.Plan),
	})

	txnModel := &model.Transaction{
		ID:      transaction.ID,
		UserID:  transaction.UserID,
		Plan:    string(transaction.Plan),
		Amount:  transaction.Amount,
		Credits: transaction.Credits,
		Payment: transaction.Payment,
		Date:    transaction.Date,
	}

	result := r.db.WithContext(ctx).Create(txnModel)
	if result.Error != nil {
		r.logger.Error("Failed to create ledger row", map[string]any{
			"transaction_id": transaction.ID,
			"error":          result.Error.Error(),
		})
		return r.wrapDatabaseError(result.Error)
	}

	return nil
}

// GetByID retrieves a ledger row by its id
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var txnModel model.Transaction
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&txnModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Ledger row not found", map[string]any{
				"transaction_id": id,
			})
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get ledger row", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return nil, r.wrapDatabaseError(result.Error)
	}

	return r.modelToEntity(&txnModel), nil
}

// MarkPaid flips the payment flag in a single conditional UPDATE. The WHERE
// clause takes effect only on an unpaid row, so a replayed callback reports
// false here instead of settling twice.
func (r *TransactionRepository) MarkPaid(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND payment = ?", id, false).
		Update("payment", true)

	if result.Error != nil {
		r.logger.Error("Failed to mark ledger row paid", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return false, r.wrapDatabaseError(result.Error)
	}

	return result.RowsAffected > 0, nil
}
