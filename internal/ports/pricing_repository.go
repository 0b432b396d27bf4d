package ports

import (
	"context"

	"ev-trip-service/internal/domain"
)

// Port: a boundary for retrieving subscription PricingPlan records.
type PricingPlanRepository interface {
	// Return all pricing plans.
	ListPricingPlans(ctx context.Context) ([]*domain.PricingPlan, error)
}
