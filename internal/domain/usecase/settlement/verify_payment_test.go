package settlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
	gatewayport "github.com/mayankmishra1802/imagify/internal/domain/port/gateway"
	mockpersistence "github.com/mayankmishra1802/imagify/mocks/port/persistence"
)

func paidOrder(receipt string) *gatewayport.Order {
	return &gatewayport.Order{
		ID:       "order_ext_1",
		Amount:   83500,
		Currency: "INR",
		Receipt:  receipt,
		Status:   gatewayport.OrderStatusPaid,
	}
}

func ledgerRow() *entity.Transaction {
	return &entity.Transaction{
		ID:      "txn-1",
		UserID:  42,
		Plan:    entity.PlanBasic,
		Amount:  835,
		Credits: 100,
		Payment: false,
		Date:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// setupSettlement wires the unit-of-work mocks for the atomic settle step
func setupSettlement(m *serviceMocks, txCtx context.Context) (*mockpersistence.MockTransactionRepository, *mockpersistence.MockUserRepository) {
	txTxnRepo := new(mockpersistence.MockTransactionRepository)
	txUserRepo := new(mockpersistence.MockUserRepository)

	m.uow.On("Begin", mock.Anything).Return(txCtx, nil)
	m.uow.On("GetTransactionRepository", txCtx).Return(txTxnRepo)
	m.uow.On("GetUserRepository", txCtx).Return(txUserRepo)
	return txTxnRepo, txUserRepo
}

func TestService_VerifyPayment(t *testing.T) {
	validCallback := func(service *Service) Callback {
		return Callback{
			OrderID:   "order_ext_1",
			PaymentID: "pay_1",
			Signature: service.verifier.Expected("order_ext_1", "pay_1"),
		}
	}

	t.Run("valid callback settles exactly once", func(t *testing.T) {
		service, m := newTestService(t)
		ctx := context.Background()
		txCtx := context.WithValue(context.Background(), struct{ k string }{"tx"}, "tx")

		m.gateway.On("FetchOrder", mock.Anything, "order_ext_1").Return(paidOrder("txn-1"), nil)
		m.txnRepo.On("GetByID", ctx, "txn-1").Return(ledgerRow(), nil)

		txTxnRepo, txUserRepo := setupSettlement(m, txCtx)
		txTxnRepo.On("MarkPaid", txCtx, "txn-1").Return(true, nil)
		txUserRepo.On("AddCredits", txCtx, uint64(42), int64(100)).Return(nil)
		m.uow.On("Commit", txCtx).Return(nil)

		err := service.VerifyPayment(ctx, validCallback(service))

		assert.NoError(t, err)
		txTxnRepo.AssertExpectations(t)
		txUserRepo.AssertExpectations(t)
		m.uow.AssertExpectations(t)
		m.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("replayed callback fails with already processed", func(t *testing.T) {
		service, m := newTestService(t)
		ctx := context.Background()
		txCtx := context.WithValue(context.Background(), struct{ k string }{"tx"}, "tx")

		row := ledgerRow()
		row.Payment = true

		m.gateway.On("FetchOrder", mock.Anything, "order_ext_1").Return(paidOrder("txn-1"), nil)
		m.txnRepo.On("GetByID", ctx, "txn-1").Return(row, nil)

		txTxnRepo, txUserRepo := setupSettlement(m, txCtx)
		// Conditional update takes no effect on a row that is already paid
		txTxnRepo.On("MarkPaid", txCtx, "txn-1").Return(false, nil)
		m.uow.On("Rollback", txCtx).Return(nil)

		err := service.VerifyPayment(ctx, validCallback(service))

		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		txUserRepo.AssertNotCalled(t, "AddCredits", mock.Anything, mock.Anything, mock.Anything)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("tampered signature leaves ledger and balance untouched", func(t *testing.T) {
		service, m := newTestService(t)
		ctx := context.Background()

		m.gateway.On("FetchOrder", mock.Anything, "order_ext_1").Return(paidOrder("txn-1"), nil)
		m.txnRepo.On("GetByID", ctx, "txn-1").Return(ledgerRow(), nil)

		err := service.VerifyPayment(ctx, Callback{
			OrderID:   "order_ext_1",
			PaymentID: "pay_1",
			Signature: "deadbeef",
		})

		assert.ErrorIs(t, err, errs.ErrSignatureMismatch)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("missing callback fields rejected before gateway fetch", func(t *testing.T) {
		testCases := []struct {
			name string
			cb   Callback
		}{
			{"missing order id", Callback{PaymentID: "pay_1", Signature: "sig"}},
			{"missing payment id", Callback{OrderID: "order_ext_1", Signature: "sig"}},
			{"missing signature", Callback{OrderID: "order_ext_1", PaymentID: "pay_1"}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				service, m := newTestService(t)

				err := service.VerifyPayment(context.Background(), tc.cb)

				assert.ErrorIs(t, err, errs.ErrInvalidCallback)
				m.gateway.AssertNotCalled(t, "FetchOrder", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("order not paid at the gateway", func(t *testing.T) {
		service, m := newTestService(t)

		unpaid := paidOrder("txn-1")
		unpaid.Status = "created"
		m.gateway.On("FetchOrder", mock.Anything, "order_ext_1").Return(unpaid, nil)

		err := service.VerifyPayment(context.Background(), validCallback(service))

		assert.ErrorIs(t, err, errs.ErrPaymentNotCompleted)
		m.txnRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("gateway fetch failure maps to gateway unavailable", func(t *testing.T) {
		service, m := newTestService(t)

		m.gateway.On("FetchOrder", mock.Anything, "order_ext_1").
			Return(nil, errors.New("dial tcp: timeout"))

		err := service.VerifyPayment(context.Background(), validCallback(service))

		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})

	t.Run("unknown receipt fails with transaction not found", func(t *testing.T) {
		service, m := newTestService(t)
		ctx := context.Background()

		m.gateway.On("FetchOrder", mock.Anything, "order_ext_1").Return(paidOrder("txn-gone"), nil)
		m.txnRepo.On("GetByID", ctx, "txn-gone").Return(nil, errs.ErrTransactionNotFound)

		err := service.VerifyPayment(ctx, validCallback(service))

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("credit grant failure rolls the settlement back", func(t *testing.T) {
		service, m := newTestService(t)
		ctx := context.Background()
		txCtx := context.WithValue(context.Background(), struct{ k string }{"tx"}, "tx")

		m.gateway.On("FetchOrder", mock.Anything, "order_ext_1").Return(paidOrder("txn-1"), nil)
		m.txnRepo.On("GetByID", ctx, "txn-1").Return(ledgerRow(), nil)

		txTxnRepo, txUserRepo := setupSettlement(m, txCtx)
		txTxnRepo.On("MarkPaid", txCtx, "txn-1").Return(true, nil)
		txUserRepo.On("AddCredits", txCtx, uint64(42), int64(100)).Return(errors.New("connection reset"))
		m.uow.On("Rollback", txCtx).Return(nil)

		err := service.VerifyPayment(ctx, validCallback(service))

		assert.Error(t, err)
		m.uow.AssertCalled(t, "Rollback", txCtx)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
