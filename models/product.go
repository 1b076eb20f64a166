package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID                   string     `gorm:"primaryKey" json:"id"`
	PharmacyID           string     `gorm:"index;not null" json:"pharmacy_id"`
	Pharmacy             Pharmacy   `gorm:"foreignKey:PharmacyID" json:"pharmacy,omitempty"`
	Name                 string     `gorm:"not null" json:"name"`
	Description          string     `json:"description"`
	Category             string     `gorm:"index" json:"category"`
	Price                float64    `gorm:"not null" json:"price"`
	Quantity             int        `json:"quantity"`
	PrescriptionRequired bool       `gorm:"default:false" json:"prescription_required"`
	ExpiryDate           *time.Time `json:"expiry_date"`
	ImageURL             string     `json:"image_url"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
