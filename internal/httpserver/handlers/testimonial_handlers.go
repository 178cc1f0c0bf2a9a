package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autohub/internal/models"
)

// ListTestimonials serves the public page: approved entries only.
func ListTestimonials(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ts []models.Testimonial
		err := db.Where("is_approved = ?", true).Order("created_at desc").Find(&ts).Error
		if err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, ts)
	}
}

func AdminListTestimonials(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ts []models.Testimonial
		if err := db.Order("created_at desc").Find(&ts).Error; err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, ts)
	}
}

type testimonialReq struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	Rating       *int    `json:"rating"`
	Content      *string `json:"content"`
	Photo        *string `json:"photo"`
	CarPurchased *string `json:"car_purchased"`
	IsApproved   *bool   `json:"is_approved"`
}

func CreateTestimonial(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req testimonialReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" ||
			req.Content == nil || strings.TrimSpace(*req.Content) == "" {
			http.Error(w, "name and content required", http.StatusBadRequest)
			return
		}
		rating := 5
		if req.Rating != nil {
			rating = *req.Rating
		}
		if rating < 1 || rating > 5 {
			http.Error(w, "rating must be 1..5", http.StatusBadRequest)
			return
		}
		t := models.Testimonial{
			Name:         strings.TrimSpace(*req.Name),
			Location:     req.Location,
			Rating:       rating,
			Content:      *req.Content,
			Photo:        req.Photo,
			CarPurchased: req.CarPurchased,
			CreatedAt:    time.Now(),
		}
		if req.IsApproved != nil {
			t.IsApproved = *req.IsApproved
		}
		if err := db.Create(&t).Error; err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, t)
	}
}

// UpdateTestimonial handles field edits and the approval toggle alike.
func UpdateTestimonial(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req testimonialReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var t models.Testimonial
		if err := db.First(&t, "id = ?", id).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if req.Name != nil {
			t.Name = strings.TrimSpace(*req.Name)
		}
		if req.Location != nil {
			t.Location = req.Location
		}
		if req.Rating != nil {
			if *req.Rating < 1 || *req.Rating > 5 {
				http.Error(w, "rating must be 1..5", http.StatusBadRequest)
				return
			}
			t.Rating = *req.Rating
		}
		if req.Content != nil {
			t.Content = *req.Content
		}
		if req.Photo != nil {
			t.Photo = req.Photo
		}
		if req.CarPurchased != nil {
			t.CarPurchased = req.CarPurchased
		}
		if req.IsApproved != nil {
			t.IsApproved = *req.IsApproved
		}
		if err := db.Save(&t).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, t)
	}
}

func DeleteTestimonial(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.Delete(&models.Testimonial{}, "id = ?", id).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"deleted": true})
	}
}
