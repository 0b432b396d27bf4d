package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ev-trip-service/internal/domain"
)

// SQLite-backed implementation of the PricingPlanRepository port.
type SqlitePricingPlanRepository struct{ DB *sql.DB }

func NewSqlitePricingPlanRepository(db *sql.DB) *SqlitePricingPlanRepository {
	return &SqlitePricingPlanRepository{DB: db}
}

// Return all pricing plans.
func (s *SqlitePricingPlanRepository) ListPricingPlans(ctx context.Context) ([]*domain.PricingPlan, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite pricing plan repository: DB is nil")
	}

	query := `
	SELECT
		plan_id,
		name,
		monthly_fee_usd,
		kwh_included,
		overage_price_per_kwh
	FROM pricing_plans
	ORDER BY plan_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pricing plans: query pricing_plans table: %w", err)
	}
	defer rows.Close()

	plans := make([]*domain.PricingPlan, 0, 8)
	for rows.Next() {
		var p domain.PricingPlan
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.MonthlyFeeUSD,
			&p.KWhIncluded,
			&p.OveragePricePerKWh,
		)
		if err != nil {
			return nil, fmt.Errorf("list pricing plans: scan row: %w", err)
		}
		plans = append(plans, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pricing plans: row iteration: %w", err)
	}

	return plans, nil
}
