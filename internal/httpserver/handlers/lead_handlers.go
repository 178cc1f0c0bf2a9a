package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autohub/internal/models"
	"autohub/internal/notify"
)

type createLeadReq struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	LeadType models.LeadType `json:"lead_type"`
	Message  *string         `json:"message"`
	CarID    *string         `json:"car_id"`
}

// CreateLead persists a lead and then notifies staff on a best-effort
// basis: the email goes out in a goroutine and a delivery failure is
// logged, never surfaced, and never rolls back the write.
func CreateLead(db *gorm.DB, notifier notify.Notifier, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createLeadReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		req.Phone = strings.TrimSpace(req.Phone)
		if req.Name == "" || req.Email == "" || req.Phone == "" {
			http.Error(w, "name, email and phone required", http.StatusBadRequest)
			return
		}
		if req.LeadType == "" {
			req.LeadType = models.LeadGeneralInquiry
		}
		if !models.KnownLeadType(req.LeadType) {
			http.Error(w, "unknown lead_type", http.StatusBadRequest)
			return
		}
		lead := models.Lead{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			LeadType:  req.LeadType,
			Message:   req.Message,
			Status:    models.LeadNew,
			CarID:     req.CarID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := db.Create(&lead).Error; err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if notifier != nil {
			n := notify.LeadNotification{
				Name:     lead.Name,
				Email:    lead.Email,
				Phone:    lead.Phone,
				LeadType: lead.LeadType,
			}
			if lead.Message != nil {
				n.Message = *lead.Message
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				if err := notifier.Send(ctx, n); err != nil {
					lg.Errorw("lead notification failed", "lead_id", lead.ID, "error", err)
				}
			}()
		}

		respondJSONStatus(w, http.StatusCreated, map[string]any{"id": lead.ID})
	}
}

// ListLeads returns leads newest first, optionally narrowed to one status.
func ListLeads(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := db.Model(&models.Lead{}).Order("created_at desc")
		if s := r.URL.Query().Get("status"); s != "" && s != "all" {
			q = q.Where("status = ?", s)
		}
		var leads []models.Lead
		if err := q.Find(&leads).Error; err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, leads)
	}
}

// UpdateLead mutates workflow fields only. Leads have no delete route.
func UpdateLead(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			Status *models.LeadStatus `json:"status"`
			Notes  *string            `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var lead models.Lead
		if err := db.First(&lead, "id = ?", id).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if req.Status != nil {
			if !models.KnownLeadStatus(*req.Status) {
				http.Error(w, "unknown status", http.StatusBadRequest)
				return
			}
			lead.Status = *req.Status
		}
		if req.Notes != nil {
			lead.Notes = req.Notes
		}
		lead.UpdatedAt = time.Now()
		if err := db.Save(&lead).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, lead)
	}
}
