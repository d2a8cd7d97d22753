package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/population-dashboard/internal/utils"
	"github.com/MKhiriev/population-dashboard/models"
)

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatisticsService.DashboardStats(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch dashboard stats.")
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// populationTrend serves both the protected and the public trend route.
func (h *Handler) populationTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := h.services.StatisticsService.PopulationTrend(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch population trend.")
		return
	}

	utils.WriteJSON(w, trend, http.StatusOK)
}

func (h *Handler) regionalDistribution(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.StatisticsService.RegionalDistribution(r.Context()), http.StatusOK)
}

// ageDistribution always answers 200. The real figures are null when the
// upstream is down.
func (h *Handler) ageDistribution(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.StatisticsService.AgeDistribution(r.Context()), http.StatusOK)
}

func (h *Handler) demographics(w http.ResponseWriter, r *http.Request) {
	demographics, err := h.services.StatisticsService.Demographics(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch demographics data.")
		return
	}

	utils.WriteJSON(w, demographics, http.StatusOK)
}

func (h *Handler) healthMetrics(w http.ResponseWriter, r *http.Request) {
	h.writeChart(w, r, h.services.StatisticsService.HealthMetrics, "Failed to fetch health metrics data.")
}

func (h *Handler) growthAnalysis(w http.ResponseWriter, r *http.Request) {
	h.writeChart(w, r, h.services.StatisticsService.GrowthAnalysis, "Failed to fetch growth analysis data.")
}

func (h *Handler) comparativeStudies(w http.ResponseWriter, r *http.Request) {
	h.writeChart(w, r, h.services.StatisticsService.ComparativeStudies, "Failed to fetch comparative studies data.")
}

func (h *Handler) urbanRural(w http.ResponseWriter, r *http.Request) {
	h.writeChart(w, r, h.services.StatisticsService.UrbanRural, "Failed to fetch urban vs rural data.")
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.services.StatisticsService.Analytics(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch analytics data.")
		return
	}

	utils.WriteJSON(w, analytics, http.StatusOK)
}

func (h *Handler) writeChart(w http.ResponseWriter, r *http.Request, load func(context.Context) (models.Chart, error), fallback string) {
	chart, err := load(r.Context())
	if err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, chart, http.StatusOK)
}
