package domain

// Subscription pricing plan for charging usage.
type PricingPlan struct {
	ID                 int64
	Name               string
	MonthlyFeeUSD      float64
	KWhIncluded        float64
	OveragePricePerKWh float64
}
