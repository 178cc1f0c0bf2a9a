package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autohub/internal/cache"
	"autohub/internal/inventory"
	"autohub/internal/models"
)

// ListCars serves the public catalog. The filter state parsed from the
// query string becomes one conjunction of predicates plus a sort order;
// identical filter tuples are served from the cache when one is wired.
func ListCars(db *gorm.DB, qc *cache.Cache, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := inventory.ParseQuery(r.URL.Query())

		var cars []models.Car
		key := f.CacheKey()
		if qc.Get(r.Context(), key, &cars) {
			respondJSON(w, cars)
			return
		}
		if err := f.Apply(db.Model(&models.Car{})).Find(&cars).Error; err != nil {
			lg.Errorw("inventory query failed", "error", err)
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		if cars == nil {
			cars = []models.Car{}
		}
		qc.Set(r.Context(), key, cars)
		respondJSON(w, cars)
	}
}

// FeaturedCars returns available vehicles flagged for the homepage.
func FeaturedCars(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cars []models.Car
		err := db.Where("is_featured = ? AND status = ?", true, models.StatusAvailable).
			Order("created_at desc").Limit(6).Find(&cars).Error
		if err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, cars)
	}
}

// CompareCars returns the rows for an explicit id list.
func CompareCars(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("ids"))
		if raw == "" {
			http.Error(w, "ids required", http.StatusBadRequest)
			return
		}
		ids := strings.Split(raw, ",")
		var cars []models.Car
		if err := db.Where("id IN ?", ids).Find(&cars).Error; err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, cars)
	}
}

// GetCar looks a vehicle up from its listing slug. The slug's trailing
// token is either the row id or the stock id, so shared links keep working
// when the descriptive part of the slug changes.
func GetCar(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		parts := strings.Split(slug, "-")
		key := parts[len(parts)-1]
		var car models.Car
		if err := db.Where("id = ? OR stock_id = ?", key, key).First(&car).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		respondJSON(w, car)
	}
}

// SimilarCars returns up to three other available vehicles of the same make.
func SimilarCars(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		parts := strings.Split(slug, "-")
		key := parts[len(parts)-1]
		var car models.Car
		if err := db.Where("id = ? OR stock_id = ?", key, key).First(&car).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		var cars []models.Car
		err := db.Where("make = ? AND id <> ? AND status = ?", car.Make, car.ID, models.StatusAvailable).
			Limit(3).Find(&cars).Error
		if err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, cars)
	}
}
