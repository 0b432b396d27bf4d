package dto

type PricingPlanResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	MonthlyFeeUSD      float64 `json:"monthly_fee_usd"`
	KWhIncluded        float64 `json:"kwh_included"`
	OveragePricePerKWh float64 `json:"overage_price_per_kwh"`
}

type ListPricingPlansResponse struct {
	Plans []PricingPlanResponse `json:"plans"`
}
