package settlement

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
)

// VerifyPayment reconciles a gateway callback into a credit grant.
//
// The callback is checked in order: field presence, gateway-reported order
// status, ledger row existence, signature authenticity, replay. The
// paid-flag flip and the balance increment then happen inside one unit of
// work; a crash between them rolls both back so a retry cannot
// double-credit.
func (s *Service) VerifyPayment(ctx context.Context, cb Callback) error {
	if cb.OrderID == "" || cb.PaymentID == "" || cb.Signature == "" {
		s.logger.Warn("Callback rejected: missing fields", map[string]any{
			"order_id":      cb.OrderID,
			"has_payment":   cb.PaymentID != "",
			"has_signature": cb.Signature != "",
		})
		return errs.ErrInvalidCallback
	}

	fetchCtx, cancel := s.timeProvider.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	order, err := s.gateway.FetchOrder(fetchCtx, cb.OrderID)
	if err != nil {
		return s.reject(cb, "", 0, "gateway order fetch failed",
			fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error()))
	}

	if !order.IsPaid() {
		return s.reject(cb, "", 0, "order not reported paid", errs.ErrPaymentNotCompleted)
	}

	txn, err := s.transactionRepo.GetByID(ctx, order.Receipt)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return s.reject(cb, order.Receipt, 0, "no ledger row for receipt", err)
		}
		return s.reject(cb, order.Receipt, 0, "ledger lookup failed", err)
	}

	if !s.verifier.Verify(cb.OrderID, cb.PaymentID, cb.Signature) {
		return s.reject(cb, txn.ID, txn.UserID, "signature check failed", errs.ErrSignatureMismatch)
	}

	if err := s.settle(ctx, txn.ID, txn.UserID, txn.Credits); err != nil {
		if errs.IsAlreadyProcessedError(err) {
			return s.reject(cb, txn.ID, txn.UserID, "replayed callback", err)
		}
		return s.reject(cb, txn.ID, txn.UserID, "settlement write failed", err)
	}

	s.logger.Info("Payment settled", map[string]any{
		"order_id":       cb.OrderID,
		"payment_id":     cb.PaymentID,
		"transaction_id": txn.ID,
		"user_id":        txn.UserID,
		"credits":        txn.Credits,
	})
	return nil
}

// settle flips the paid flag and grants the credits as one unit of work.
// The flip is conditional on the flag being unset, which closes the
// concurrent double-credit race: only one of two racing callbacks can see
// the update take effect.
func (s *Service) settle(ctx context.Context, transactionID string, userID uint64, credits int64) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	marked, err := s.uow.GetTransactionRepository(txCtx).MarkPaid(txCtx, transactionID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}
	if !marked {
		_ = s.uow.Rollback(txCtx)
		return errs.ErrAlreadyProcessed
	}

	if err := s.uow.GetUserRepository(txCtx).AddCredits(txCtx, userID, credits); err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	return s.uow.Commit(txCtx)
}

// reject logs the structured rejection and returns the wrapped error. Every
// distinct rejection reason stays visible in logs for reconciliation audits
// even though the client sees a generic message.
func (s *Service) reject(cb Callback, transactionID string, userID uint64, reason string, err error) error {
	rejection := errs.NewSettlementError(cb.OrderID, cb.PaymentID, transactionID, userID, reason, err)

	var settlementErr *errs.SettlementError
	if errors.As(rejection, &settlementErr) {
		s.logger.Error("Payment verification rejected", settlementErr.LogFields())
	}
	return rejection
}
