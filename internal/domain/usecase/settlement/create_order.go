package settlement

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
	gatewayport "github.com/mayankmishra1802/imagify/internal/domain/port/gateway"
)

// CreateOrder creates a pending ledger row for the plan purchase and places
// a matching order with the payment gateway. No credits are granted here;
// the ledger row stays unpaid until the callback is verified.
func (s *Service) CreateOrder(ctx context.Context, userID uint64, planID entity.PlanID) (*OrderDescriptor, error) {
	plan, err := s.catalog.Lookup(planID)
	if err != nil {
		s.logger.Warn("Order rejected: unknown plan", map[string]any{
			"user_id": userID,
			"plan_id": string(planID),
		})
		return nil, err
	}

	txn, err := entity.NewTransaction(userID, plan, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		s.logger.Error("Failed to create ledger row", map[string]any{
			"user_id": userID,
			"plan_id": string(planID),
			"error":   err.Error(),
		})
		return nil, err
	}

	orderCtx, cancel := s.timeProvider.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	order, err := s.gateway.CreateOrder(orderCtx, gatewayport.CreateOrderInput{
		Amount:   plan.Amount * gatewaySubUnitFactor,
		Currency: s.currency,
		Receipt:  txn.ID,
		Notes: map[string]string{
			"planId":  string(plan.ID),
			"credits": strconv.FormatInt(plan.Credits, 10),
			"userId":  strconv.FormatUint(userID, 10),
		},
	})
	if err != nil {
		s.logger.Error("Payment gateway order creation failed", map[string]any{
			"user_id":        userID,
			"transaction_id": txn.ID,
			"plan_id":        string(planID),
			"error":          err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}

	s.logger.Info("Payment order created", map[string]any{
		"user_id":        userID,
		"transaction_id": txn.ID,
		"order_id":       order.ID,
		"plan_id":        string(plan.ID),
		"amount":         order.Amount,
		"credits":        plan.Credits,
	})

	return &OrderDescriptor{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}
