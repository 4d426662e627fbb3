package entity

import (
	"fmt"

	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
)

// PlanID identifies a purchasable credit package
type PlanID string

// Plan identifiers
const (
	PlanBasic    PlanID = "Basic"
	PlanAdvanced PlanID = "Advanced"
	PlanBusiness PlanID = "Business"
)

// Plan maps a plan id to the fixed credit count and price it sells for.
// Amount is in minor currency units; the gateway order is placed for
// Amount multiplied by the gateway's sub-unit factor.
type Plan struct {
	ID      PlanID
	Credits int64
	Amount  int64
}

// PlanCatalog is the fixed set of purchasable plans. It is not persisted;
// the ledger row records the (credits, amount) pair that was in effect at
// purchase time.
type PlanCatalog map[PlanID]Plan

// DefaultPlanCatalog returns the stock plan table
func DefaultPlanCatalog() PlanCatalog {
	return PlanCatalog{
		PlanBasic:    {ID: PlanBasic, Credits: 100, Amount: 835},
		PlanAdvanced: {ID: PlanAdvanced, Credits: 500, Amount: 4175},
		PlanBusiness: {ID: PlanBusiness, Credits: 1000, Amount: 8453},
	}
}

// Lookup resolves a plan id, failing for ids outside the catalog
func (c PlanCatalog) Lookup(id PlanID) (Plan, error) {
	plan, ok := c[id]
	if !ok {
		return Plan{}, fmt.Errorf("%w: %s", errs.ErrInvalidPlan, id)
	}
	return plan, nil
}

// Validate checks the catalog is usable, meant to run once at startup
func (c PlanCatalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("plan catalog is empty")
	}
	for id, plan := range c {
		if plan.ID != id {
			return fmt.Errorf("plan %s: id mismatch (%s)", id, plan.ID)
		}
		if plan.Credits <= 0 {
			return fmt.Errorf("plan %s: credits must be positive", id)
		}
		if plan.Amount <= 0 {
			return fmt.Errorf("plan %s: amount must be positive", id)
		}
	}
	return nil
}
