package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pharmacy struct {
	ID        string `gorm:"primaryKey" json:"id"`
	UserID    string `gorm:"uniqueIndex;not null" json:"user_id"` // One pharmacy profile per user
	User      User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	OpenTime  string  `json:"open_time"`
	CloseTime string  `json:"close_time"`
	// DeliveryRadius is stored per pharmacy but not enforced against
	// search results or the rider feed.
	DeliveryRadius float64   `gorm:"default:5" json:"delivery_radius"`
	Verified       bool      `gorm:"default:false" json:"verified"`
	Products       []Product `gorm:"foreignKey:PharmacyID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Pharmacy) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
