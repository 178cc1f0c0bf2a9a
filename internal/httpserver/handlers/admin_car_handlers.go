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

type carReq struct {
	StockID         *string              `json:"stock_id"`
	VIN             *string              `json:"vin"`
	Make            *string              `json:"make"`
	Model           *string              `json:"model"`
	Year            *int                 `json:"year"`
	Trim            *string              `json:"trim"`
	Engine          *string              `json:"engine"`
	ExteriorColor   *string              `json:"exterior_color"`
	InteriorColor   *string              `json:"interior_color"`
	BodyType        *models.BodyType     `json:"body_type"`
	FuelType        *models.FuelType     `json:"fuel_type"`
	Transmission    *models.Transmission `json:"transmission"`
	Mileage         *int64               `json:"mileage"`
	Location        *string              `json:"location"`
	Price           *int64               `json:"price"`
	DiscountPrice   *int64               `json:"discount_price"`
	IsNegotiable    *bool                `json:"is_negotiable"`
	MainImage       *string              `json:"main_image"`
	Images          *models.StringList   `json:"images"`
	Condition       *models.Condition    `json:"condition"`
	Status          *models.CarStatus    `json:"status"`
	IsFeatured      *bool                `json:"is_featured"`
	IsNewArrival    *bool                `json:"is_new_arrival"`
	IsTopDeal       *bool                `json:"is_top_deal"`
	Description     *string              `json:"description"`
	InspectionNotes *string              `json:"inspection_notes"`
	MetaTitle       *string              `json:"meta_title"`
	MetaDescription *string              `json:"meta_description"`
}

// validateDiscount rejects a discount at or above the list price.
func validateDiscount(price int64, discount *int64) bool {
	return discount == nil || *discount < price
}

func AdminListCars(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cars []models.Car
		if err := db.Order("created_at desc").Find(&cars).Error; err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, cars)
	}
}

func CreateCar(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req carReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Make == nil || strings.TrimSpace(*req.Make) == "" ||
			req.Model == nil || strings.TrimSpace(*req.Model) == "" ||
			req.Year == nil || req.Price == nil {
			http.Error(w, "make, model, year and price required", http.StatusBadRequest)
			return
		}
		if !validateDiscount(*req.Price, req.DiscountPrice) {
			http.Error(w, "discount_price must be less than price", http.StatusBadRequest)
			return
		}
		car := models.Car{
			Make:      strings.TrimSpace(*req.Make),
			Model:     strings.TrimSpace(*req.Model),
			Year:      *req.Year,
			Price:     *req.Price,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		applyCarReq(&car, req)
		if err := db.Create(&car).Error; err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, car)
	}
}

func UpdateCar(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req carReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var car models.Car
		if err := db.First(&car, "id = ?", id).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if req.Make != nil {
			car.Make = strings.TrimSpace(*req.Make)
		}
		if req.Model != nil {
			car.Model = strings.TrimSpace(*req.Model)
		}
		if req.Year != nil {
			car.Year = *req.Year
		}
		if req.Price != nil {
			car.Price = *req.Price
		}
		applyCarReq(&car, req)
		if !validateDiscount(car.Price, car.DiscountPrice) {
			http.Error(w, "discount_price must be less than price", http.StatusBadRequest)
			return
		}
		car.UpdatedAt = time.Now()
		if err := db.Save(&car).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, car)
	}
}

func DeleteCar(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.Delete(&models.Car{}, "id = ?", id).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"deleted": true})
	}
}

// applyCarReq copies every optional field present in the request onto the
// model; required fields are handled by the callers.
func applyCarReq(car *models.Car, req carReq) {
	if req.StockID != nil {
		car.StockID = req.StockID
	}
	if req.VIN != nil {
		car.VIN = req.VIN
	}
	if req.Trim != nil {
		car.Trim = req.Trim
	}
	if req.Engine != nil {
		car.Engine = req.Engine
	}
	if req.ExteriorColor != nil {
		car.ExteriorColor = req.ExteriorColor
	}
	if req.InteriorColor != nil {
		car.InteriorColor = req.InteriorColor
	}
	if req.BodyType != nil {
		car.BodyType = *req.BodyType
	}
	if req.FuelType != nil {
		car.FuelType = *req.FuelType
	}
	if req.Transmission != nil {
		car.Transmission = *req.Transmission
	}
	if req.Mileage != nil {
		car.Mileage = req.Mileage
	}
	if req.Location != nil {
		car.Location = req.Location
	}
	if req.DiscountPrice != nil {
		car.DiscountPrice = req.DiscountPrice
	}
	if req.IsNegotiable != nil {
		car.IsNegotiable = *req.IsNegotiable
	}
	if req.MainImage != nil {
		car.MainImage = req.MainImage
	}
	if req.Images != nil {
		car.Images = *req.Images
	}
	if req.Condition != nil {
		car.Condition = *req.Condition
	}
	if req.Status != nil {
		car.Status = *req.Status
	}
	if req.IsFeatured != nil {
		car.IsFeatured = *req.IsFeatured
	}
	if req.IsNewArrival != nil {
		car.IsNewArrival = *req.IsNewArrival
	}
	if req.IsTopDeal != nil {
		car.IsTopDeal = *req.IsTopDeal
	}
	if req.Description != nil {
		car.Description = req.Description
	}
	if req.InspectionNotes != nil {
		car.InspectionNotes = req.InspectionNotes
	}
	if req.MetaTitle != nil {
		car.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != nil {
		car.MetaDescription = req.MetaDescription
	}
}
