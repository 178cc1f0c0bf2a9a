package auth

import (
	"autohub/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HasRole reports whether the user carries the given role tag.
func HasRole(db *gorm.DB, userID string, role models.AppRole) (bool, error) {
	var count int64
	err := db.Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	return count > 0, err
}

// IsAdminOrStaff reports whether the user carries any elevated role.
func IsAdminOrStaff(db *gorm.DB, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.UserRole{}).
		Where("user_id = ? AND role IN ?", userID, []models.AppRole{models.RoleAdmin, models.RoleStaff}).
		Count(&count).Error
	return count > 0, err
}

// ResolveCapabilities issues the admin check and the admin-or-staff check
// concurrently and waits for both. If either check fails, both capabilities
// come back false: a role lookup error must never grant elevated access.
func ResolveCapabilities(db *gorm.DB, lg *zap.SugaredLogger, userID string) Capabilities {
	type result struct {
		ok  bool
		err error
	}
	adminCh := make(chan result, 1)
	staffCh := make(chan result, 1)
	go func() {
		ok, err := HasRole(db, userID, models.RoleAdmin)
		adminCh <- result{ok, err}
	}()
	go func() {
		ok, err := IsAdminOrStaff(db, userID)
		staffCh <- result{ok, err}
	}()
	admin := <-adminCh
	staff := <-staffCh
	if admin.err != nil || staff.err != nil {
		lg.Errorw("role check failed", "user_id", userID, "admin_err", admin.err, "staff_err", staff.err)
		return Capabilities{}
	}
	return Capabilities{IsAdmin: admin.ok, IsStaff: staff.ok}
}
