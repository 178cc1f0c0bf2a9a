package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadType string

const (
	LeadGeneralInquiry   LeadType = "general_inquiry"
	LeadViewingRequest   LeadType = "viewing_request"
	LeadFinancingRequest LeadType = "financing_request"
	LeadTradeIn          LeadType = "trade_in"
	LeadSellCar          LeadType = "sell_car"
)

// KnownLeadType reports whether t is one of the accepted lead types.
func KnownLeadType(t LeadType) bool {
	switch t {
	case LeadGeneralInquiry, LeadViewingRequest, LeadFinancingRequest, LeadTradeIn, LeadSellCar:
		return true
	}
	return false
}

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadClosed    LeadStatus = "closed"
)

func KnownLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadNew, LeadContacted, LeadClosed:
		return true
	}
	return false
}

// Lead is a captured customer inquiry. Leads are created by public forms,
// advanced through their status by staff, and never deleted through the API.
type Lead struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"not null" json:"email"`
	Phone     string     `gorm:"not null" json:"phone"`
	LeadType  LeadType   `gorm:"not null;default:general_inquiry" json:"lead_type"`
	Message   *string    `json:"message,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Status    LeadStatus `gorm:"not null;default:new;index" json:"status"`
	CarID     *string    `gorm:"type:uuid;index" json:"car_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
