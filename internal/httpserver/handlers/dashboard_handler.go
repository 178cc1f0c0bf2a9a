package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"autohub/internal/models"
)

// Dashboard aggregates the admin landing-page stats: inventory counts and
// value, lead counts and the five most recent leads.
func Dashboard(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var totalCars, availableCars, totalLeads, newLeads int64
		var totalValue int64

		if err := db.Model(&models.Car{}).Count(&totalCars).Error; err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		_ = db.Model(&models.Car{}).Where("status = ?", models.StatusAvailable).Count(&availableCars).Error
		_ = db.Model(&models.Car{}).Select("COALESCE(SUM(price), 0)").Scan(&totalValue).Error
		_ = db.Model(&models.Lead{}).Count(&totalLeads).Error
		_ = db.Model(&models.Lead{}).Where("status = ?", models.LeadNew).Count(&newLeads).Error

		var recent []models.Lead
		_ = db.Order("created_at desc").Limit(5).Find(&recent).Error
		if recent == nil {
			recent = []models.Lead{}
		}

		respondJSON(w, map[string]any{
			"total_cars":     totalCars,
			"available_cars": availableCars,
			"total_value":    totalValue,
			"total_leads":    totalLeads,
			"new_leads":      newLeads,
			"recent_leads":   recent,
		})
	}
}
