package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
)

func TestDefaultPlanCatalog(t *testing.T) {
	catalog := DefaultPlanCatalog()

	assert.NoError(t, catalog.Validate())

	testCases := []struct {
		id      PlanID
		credits int64
		amount  int64
	}{
		{PlanBasic, 100, 835},
		{PlanAdvanced, 500, 4175},
		{PlanBusiness, 1000, 8453},
	}

	for _, tc := range testCases {
		t.Run(string(tc.id), func(t *testing.T) {
			plan, err := catalog.Lookup(tc.id)
			assert.NoError(t, err)
			assert.Equal(t, tc.credits, plan.Credits)
			assert.Equal(t, tc.amount, plan.Amount)
		})
	}
}

func TestPlanCatalog_Lookup_InvalidPlan(t *testing.T) {
	catalog := DefaultPlanCatalog()

	_, err := catalog.Lookup("Premium")
	assert.ErrorIs(t, err, errs.ErrInvalidPlan)

	_, err = catalog.Lookup("")
	assert.ErrorIs(t, err, errs.ErrInvalidPlan)
}

func TestPlanCatalog_Validate(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		assert.Error(t, PlanCatalog{}.Validate())
	})

	t.Run("zero credits", func(t *testing.T) {
		catalog := PlanCatalog{
			PlanBasic: {ID: PlanBasic, Credits: 0, Amount: 835},
		}
		assert.Error(t, catalog.Validate())
	})

	t.Run("negative amount", func(t *testing.T) {
		catalog := PlanCatalog{
			PlanBasic: {ID: PlanBasic, Credits: 100, Amount: -1},
		}
		assert.Error(t, catalog.Validate())
	})

	t.Run("id mismatch", func(t *testing.T) {
		catalog := PlanCatalog{
			PlanBasic: {ID: PlanAdvanced, Credits: 100, Amount: 835},
		}
		assert.Error(t, catalog.Validate())
	})
}
