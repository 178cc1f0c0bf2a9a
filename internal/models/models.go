package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppRole is a role tag attached to a user via UserRole.
type AppRole string

const (
	RoleAdmin AppRole = "admin"
	RoleStaff AppRole = "staff"
)

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `json:"full_name"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserRole associates a user with a role tag. A user may carry several.
type UserRole struct {
	ID     string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string  `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_role" json:"user_id"`
	Role   AppRole `gorm:"not null;uniqueIndex:idx_user_role" json:"role"`
}

func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type Session struct {
	JTI       string     `gorm:"primaryKey;size:64" json:"jti"`
	UserID    string     `gorm:"type:uuid;index;not null" json:"user_id"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Testimonial struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Location     *string   `json:"location,omitempty"`
	Rating       int       `gorm:"not null;default:5" json:"rating"`
	Content      string    `gorm:"not null" json:"content"`
	Photo        *string   `json:"photo,omitempty"`
	CarPurchased *string   `json:"car_purchased,omitempty"`
	IsApproved   bool      `gorm:"not null;default:false" json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type BlogPost struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Content     string    `gorm:"not null" json:"content"`
	CoverImage  *string   `json:"cover_image,omitempty"`
	Author      *string   `json:"author,omitempty"`
	IsPublished bool      `gorm:"not null;default:false" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// SiteSettings is a singleton row; the settings handler upserts it.
type SiteSettings struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Phone         *string   `json:"phone,omitempty"`
	Whatsapp      *string   `json:"whatsapp,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Address       *string   `json:"address,omitempty"`
	BusinessHours *string   `json:"business_hours,omitempty"`
	Facebook      *string   `json:"facebook,omitempty"`
	Instagram     *string   `json:"instagram,omitempty"`
	Twitter       *string   `json:"twitter,omitempty"`
	Logo          *string   `json:"logo,omitempty"`
	HeroHeadline  *string   `json:"hero_headline,omitempty"`
	HeroSubtext   *string   `json:"hero_subtext,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *SiteSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
