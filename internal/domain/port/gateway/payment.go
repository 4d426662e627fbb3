package gateway

import (
	"context"
)

// Order is the external payment order descriptor returned by the gateway
type Order struct {
	ID       string // Gateway-assigned order id
	Amount   int64  // Amount in the gateway's sub-unit convention
	Currency string
	Receipt  string // Correlation key, carries the ledger transaction id
	Status   string // Gateway-reported order status
}

// OrderStatusPaid is the gateway status of a completed order
const OrderStatusPaid = "paid"

// IsPaid reports whether the gateway considers the order settled
func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

// CreateOrderInput describes the order to place with the gateway
type CreateOrderInput struct {
	Amount   int64 // Sub-unit amount (price in minor units x 100)
	Currency string
	Receipt  string
	Notes    map[string]string
}

// PaymentGateway is the narrow surface of the external payment provider the
// settlement service depends on. It is a long-lived collaborator injected
// once, not reconstructed per request.
type PaymentGateway interface {
	// CreateOrder places a new payment order with the gateway
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)

	// FetchOrder retrieves an order by its gateway id
	FetchOrder(ctx context.Context, orderID string) (*Order, error)
}
