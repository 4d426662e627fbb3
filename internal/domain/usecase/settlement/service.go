package settlement

import (
	"time"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
	coreport "github.com/mayankmishra1802/imagify/internal/domain/port/core"
	gatewayport "github.com/mayankmishra1802/imagify/internal/domain/port/gateway"
	"github.com/mayankmishra1802/imagify/internal/domain/port/persistence"
)

// gatewaySubUnitFactor converts plan prices in minor currency units into the
// gateway's sub-unit order amounts.
const gatewaySubUnitFactor = 100

// Service implements the credit settlement workflow: creating pending
// transactions with matching gateway orders, and reconciling verified
// payments into credit balances exactly once.
//
// State machine per transaction: CREATED(unpaid) -> VERIFIED(paid).
// No other transitions exist.
type Service struct {
	uow             persistence.UnitOfWork
	transactionRepo persistence.TransactionRepository
	gateway         gatewayport.PaymentGateway
	verifier        *SignatureVerifier
	catalog         entity.PlanCatalog
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	gatewayTimeout  time.Duration
	currency        string
}

// NewService creates a new settlement service. The gateway client and
// signature secret are injected once and shared across requests.
func NewService(
	uow persistence.UnitOfWork,
	transactionRepo persistence.TransactionRepository,
	paymentGateway gatewayport.PaymentGateway,
	verifier *SignatureVerifier,
	catalog entity.PlanCatalog,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	gatewayTimeout time.Duration,
	currency string,
) *Service {
	return &Service{
		uow:             uow,
		transactionRepo: transactionRepo,
		gateway:         paymentGateway,
		verifier:        verifier,
		catalog:         catalog,
		timeProvider:    timeProvider,
		logger:          logger,
		gatewayTimeout:  gatewayTimeout,
		currency:        currency,
	}
}

// OrderDescriptor is the external payment order returned to the caller so
// the client can complete the payment out-of-band
type OrderDescriptor struct {
	ID       string
	Amount   int64
	Currency string
}

// Callback carries the three gateway-supplied fields of a payment callback
type Callback struct {
	OrderID   string
	PaymentID string
	Signature string
}
