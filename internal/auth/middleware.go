package auth

import (
	"net/http"
	"strings"
	"time"

	"autohub/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// JWTAuth authenticates the request. Checks run in a fixed order:
// token first, then the backing session row. Role requirements are
// layered on top by RequireAdmin/RequireStaff.
func JWTAuth(db *gorm.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			raw := strings.TrimPrefix(h, "Bearer ")
			claims, err := Verify(raw)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			var sess models.Session
			if claims.JWTID == "" || db.First(&sess, "jti = ?", claims.JWTID).Error != nil {
				http.Error(w, "session not found", http.StatusUnauthorized)
				return
			}
			if sess.RevokedAt != nil || time.Now().After(sess.ExpiresAt) {
				http.Error(w, "session expired/revoked", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin rejects authenticated users lacking the admin role.
// Capabilities resolve fresh per request and are cached in the context
// for downstream middleware and handlers.
func RequireAdmin(db *gorm.DB, lg *zap.SugaredLogger) func(http.Handler) http.Handler {
	return requireCapability(db, lg, func(c Capabilities) bool { return c.IsAdmin })
}

// RequireStaff rejects authenticated users lacking both elevated roles.
func RequireStaff(db *gorm.DB, lg *zap.SugaredLogger) func(http.Handler) http.Handler {
	return requireCapability(db, lg, func(c Capabilities) bool { return c.IsStaff })
}

func requireCapability(db *gorm.DB, lg *zap.SugaredLogger, allowed func(Capabilities) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sub := Subject(r.Context())
			if sub == "" {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}
			caps, ok := CapabilitiesFromContext(r.Context())
			if !ok {
				caps = ResolveCapabilities(db, lg, sub)
			}
			if !allowed(caps) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCapabilities(r.Context(), caps)))
		})
	}
}
