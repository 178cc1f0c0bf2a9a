package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"autohub/internal/auth"
	"autohub/internal/cache"
	"autohub/internal/config"
	"autohub/internal/httpserver"
	"autohub/internal/logger"
	"autohub/internal/models"
	"autohub/internal/notify"
)

func main() {
	cfg := config.Load()
	lg := logger.New()
	defer lg.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		lg.Fatalw("db handle failed", "error", err)
	}
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	if err := db.AutoMigrate(
		&models.User{}, &models.UserRole{}, &models.Session{},
		&models.Car{}, &models.Lead{}, &models.Testimonial{},
		&models.BlogPost{}, &models.SiteSettings{},
	); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}
	seedDefaultAdmin(db, cfg, lg)
	seedSettings(db)

	qc := cache.New(cfg.Redis)
	if qc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := qc.Ping(ctx); err != nil {
			lg.Warnw("redis unreachable, inventory cache disabled", "error", err)
			qc = nil
		}
		cancel()
	}

	var notifier notify.Notifier
	if cfg.Notify.APIKey != "" && cfg.Notify.To != "" {
		notifier = notify.NewResend(cfg.Notify)
	} else {
		lg.Infow("lead notifications disabled, RESEND_API_KEY/NOTIFY_TO unset")
	}

	router := httpserver.NewRouter(db, qc, notifier, lg)
	lg.Infow("listening", "port", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		log.Fatal(err)
	}
}

// seedDefaultAdmin creates the bootstrap admin account once. Skipped
// entirely unless a seed password is configured.
func seedDefaultAdmin(db *gorm.DB, cfg *config.Config, lg *zap.SugaredLogger) {
	if cfg.Seed.AdminPassword == "" {
		return
	}
	email := strings.ToLower(cfg.Seed.AdminEmail)
	var count int64
	db.Model(&models.User{}).Where("LOWER(email) = ?", email).Count(&count)
	if count > 0 {
		return
	}
	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		lg.Errorw("seed admin hash failed", "error", err)
		return
	}
	u := models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Administrator",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(&u).Error; err != nil {
		lg.Errorw("seed admin failed", "error", err)
		return
	}
	for _, role := range []models.AppRole{models.RoleAdmin, models.RoleStaff} {
		_ = db.Create(&models.UserRole{UserID: u.ID, Role: role}).Error
	}
	lg.Infow("seeded default admin", "email", email)
}

// seedSettings guarantees the singleton settings row exists.
func seedSettings(db *gorm.DB) {
	var count int64
	db.Model(&models.SiteSettings{}).Count(&count)
	if count == 0 {
		now := time.Now()
		_ = db.Create(&models.SiteSettings{CreatedAt: now, UpdatedAt: now}).Error
	}
}
