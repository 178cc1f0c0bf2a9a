package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"autohub/internal/models"
)

// GetSettings returns the singleton settings row, or an empty object when
// none has been saved yet.
func GetSettings(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s models.SiteSettings
		err := db.First(&s).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, s)
	}
}

type settingsReq struct {
	Phone         *string `json:"phone"`
	Whatsapp      *string `json:"whatsapp"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	BusinessHours *string `json:"business_hours"`
	Facebook      *string `json:"facebook"`
	Instagram     *string `json:"instagram"`
	Twitter       *string `json:"twitter"`
	Logo          *string `json:"logo"`
	HeroHeadline  *string `json:"hero_headline"`
	HeroSubtext   *string `json:"hero_subtext"`
}

// UpsertSettings updates the singleton row when it exists and inserts it
// otherwise. There is never more than one row.
func UpsertSettings(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req settingsReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var s models.SiteSettings
		err := db.First(&s).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		applySettingsReq(&s, req)
		s.UpdatedAt = time.Now()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.CreatedAt = time.Now()
			if err := db.Create(&s).Error; err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		} else {
			if err := db.Save(&s).Error; err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
		respondJSON(w, s)
	}
}

func applySettingsReq(s *models.SiteSettings, req settingsReq) {
	if req.Phone != nil {
		s.Phone = req.Phone
	}
	if req.Whatsapp != nil {
		s.Whatsapp = req.Whatsapp
	}
	if req.Email != nil {
		s.Email = req.Email
	}
	if req.Address != nil {
		s.Address = req.Address
	}
	if req.BusinessHours != nil {
		s.BusinessHours = req.BusinessHours
	}
	if req.Facebook != nil {
		s.Facebook = req.Facebook
	}
	if req.Instagram != nil {
		s.Instagram = req.Instagram
	}
	if req.Twitter != nil {
		s.Twitter = req.Twitter
	}
	if req.Logo != nil {
		s.Logo = req.Logo
	}
	if req.HeroHeadline != nil {
		s.HeroHeadline = req.HeroHeadline
	}
	if req.HeroSubtext != nil {
		s.HeroSubtext = req.HeroSubtext
	}
}
