package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autohub/internal/models"
)

type userWithRoles struct {
	models.User
	Roles []models.AppRole `json:"roles"`
}

// ListUsers returns every account with its role tags. Admin-level only.
func ListUsers(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		var roleRows []models.UserRole
		if err := db.Find(&roleRows).Error; err != nil {
			http.Error(w, "query failed", http.StatusInternalServerError)
			return
		}
		byUser := make(map[string][]models.AppRole, len(users))
		for _, rr := range roleRows {
			byUser[rr.UserID] = append(byUser[rr.UserID], rr.Role)
		}
		out := make([]userWithRoles, 0, len(users))
		for _, u := range users {
			roles := byUser[u.ID]
			if roles == nil {
				roles = []models.AppRole{}
			}
			out = append(out, userWithRoles{User: u, Roles: roles})
		}
		respondJSON(w, out)
	}
}

// GrantRole attaches a role tag to a user. The unique index makes the
// operation idempotent at the database level.
func GrantRole(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")
		role := models.AppRole(chi.URLParam(r, "role"))
		if role != models.RoleAdmin && role != models.RoleStaff {
			http.Error(w, "unknown role", http.StatusBadRequest)
			return
		}
		var u models.User
		if err := db.First(&u, "id = ?", userID).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		rr := models.UserRole{UserID: userID, Role: role}
		if err := db.Where("user_id = ? AND role = ?", userID, role).
			FirstOrCreate(&rr).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"granted": true})
	}
}

func RevokeRole(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")
		role := models.AppRole(chi.URLParam(r, "role"))
		err := db.Where("user_id = ? AND role = ?", userID, role).
			Delete(&models.UserRole{}).Error
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"revoked": true})
	}
}
