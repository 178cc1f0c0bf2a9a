package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"autohub/internal/models"
)

func setupDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	if migrate {
		require.NoError(t, db.AutoMigrate(&models.User{}, &models.UserRole{}))
	}
	return db
}

func grant(t *testing.T, db *gorm.DB, userID string, role models.AppRole) {
	t.Helper()
	require.NoError(t, db.Create(&models.UserRole{UserID: userID, Role: role}).Error)
}

func TestResolveCapabilitiesAdmin(t *testing.T) {
	db := setupDB(t, true)
	lg := zap.NewNop().Sugar()
	grant(t, db, "u1", models.RoleAdmin)

	caps := ResolveCapabilities(db, lg, "u1")
	require.True(t, caps.IsAdmin)
	require.True(t, caps.IsStaff, "an admin is admin-or-staff")
}

func TestResolveCapabilitiesStaffOnly(t *testing.T) {
	db := setupDB(t, true)
	lg := zap.NewNop().Sugar()
	grant(t, db, "u2", models.RoleStaff)

	caps := ResolveCapabilities(db, lg, "u2")
	require.False(t, caps.IsAdmin)
	require.True(t, caps.IsStaff)
}

func TestResolveCapabilitiesNoRoles(t *testing.T) {
	db := setupDB(t, true)
	lg := zap.NewNop().Sugar()

	caps := ResolveCapabilities(db, lg, "nobody")
	require.False(t, caps.IsAdmin)
	require.False(t, caps.IsStaff)
}

// A role-check error must never grant elevated access: when both checks
// fail (missing table), both capabilities come back false and no error
// escapes to the caller.
func TestResolveCapabilitiesFailsClosed(t *testing.T) {
	db := setupDB(t, false)
	lg := zap.NewNop().Sugar()

	caps := ResolveCapabilities(db, lg, "u1")
	require.False(t, caps.IsAdmin)
	require.False(t, caps.IsStaff)
}
