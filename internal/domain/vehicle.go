package domain

// Electric vehicle owned by a user, keyed by the owner's email.
// Battery and efficiency figures feed the trip planner.
type Vehicle struct {
	ID                    int64
	UserEmail             string
	Make                  string
	Model                 string
	BatteryKWh            float64
	EfficiencyKWhPer100Km float64
	MaxRangeKm            float64
}
