package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BodyType string

const (
	BodySedan       BodyType = "sedan"
	BodySUV         BodyType = "suv"
	BodyCoupe       BodyType = "coupe"
	BodyTruck       BodyType = "truck"
	BodyBus         BodyType = "bus"
	BodyHatchback   BodyType = "hatchback"
	BodyWagon       BodyType = "wagon"
	BodyConvertible BodyType = "convertible"
)

// Condition classifies a vehicle's provenance.
type Condition string

const (
	ConditionBrandNew    Condition = "brand_new"
	ConditionForeignUsed Condition = "foreign_used"
	ConditionLocalUsed   Condition = "nigerian_used"
)

type CarStatus string

const (
	StatusAvailable CarStatus = "available"
	StatusReserved  CarStatus = "reserved"
	StatusSold      CarStatus = "sold"
)

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

// Car is a vehicle on the lot. StockID is the human-readable identifier
// shown on listings, distinct from the row's uuid.
type Car struct {
	ID              string       `gorm:"type:uuid;primaryKey" json:"id"`
	StockID         *string      `gorm:"index" json:"stock_id,omitempty"`
	VIN             *string      `json:"vin,omitempty"`
	Make            string       `gorm:"not null;index" json:"make"`
	Model           string       `gorm:"not null" json:"model"`
	Year            int          `gorm:"not null" json:"year"`
	Trim            *string      `json:"trim,omitempty"`
	Engine          *string      `json:"engine,omitempty"`
	ExteriorColor   *string      `json:"exterior_color,omitempty"`
	InteriorColor   *string      `json:"interior_color,omitempty"`
	BodyType        BodyType     `gorm:"not null;default:sedan" json:"body_type"`
	FuelType        FuelType     `gorm:"not null;default:petrol" json:"fuel_type"`
	Transmission    Transmission `gorm:"not null;default:automatic" json:"transmission"`
	Mileage         *int64       `json:"mileage,omitempty"`
	Location        *string      `json:"location,omitempty"`
	Price           int64        `gorm:"not null" json:"price"`
	DiscountPrice   *int64       `json:"discount_price,omitempty"`
	IsNegotiable    bool         `gorm:"not null;default:false" json:"is_negotiable"`
	MainImage       *string      `json:"main_image,omitempty"`
	Images          StringList   `gorm:"type:jsonb" json:"images"`
	Condition       Condition    `gorm:"not null;default:foreign_used" json:"condition"`
	Status          CarStatus    `gorm:"not null;default:available;index" json:"status"`
	IsFeatured      bool         `gorm:"not null;default:false" json:"is_featured"`
	IsNewArrival    bool         `gorm:"not null;default:false" json:"is_new_arrival"`
	IsTopDeal       bool         `gorm:"not null;default:false" json:"is_top_deal"`
	Description     *string      `json:"description,omitempty"`
	InspectionNotes *string      `json:"inspection_notes,omitempty"`
	MetaTitle       *string      `json:"meta_title,omitempty"`
	MetaDescription *string      `json:"meta_description,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
