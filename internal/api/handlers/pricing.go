package handlers

import (
	"log"
	"net/http"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/ports"
)

// PricingPlanHandler exposes read-only subscription plan listing.
type PricingPlanHandler struct {
	Repo ports.PricingPlanRepository
}

func (h *PricingPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Repo.ListPricingPlans(r.Context())
	if err != nil {
		log.Printf("list pricing plans failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPricingPlansResponse{
		Plans: make([]dto.PricingPlanResponse, 0, len(plans)),
	}
	for _, p := range plans {
		res.Plans = append(res.Plans, dto.PricingPlanResponse{
			ID:                 p.ID,
			Name:               p.Name,
			MonthlyFeeUSD:      p.MonthlyFeeUSD,
			KWhIncluded:        p.KWhIncluded,
			OveragePricePerKWh: p.OveragePricePerKWh,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
