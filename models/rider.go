package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RiderAvailability string

const (
	RiderAvailable RiderAvailability = "AVAILABLE"
	RiderBusy      RiderAvailability = "BUSY"
	RiderOffline   RiderAvailability = "OFFLINE"
)

type Rider struct {
	ID            string `gorm:"primaryKey" json:"id"`
	UserID        string `gorm:"uniqueIndex;not null" json:"user_id"` // One rider profile per user
	User          User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TransportType string `json:"transport_type"`
	Verified      bool   `gorm:"default:false" json:"verified"`
	Availability  RiderAvailability `gorm:"type:VARCHAR(20);default:'OFFLINE'" json:"availability"`
	// Last known location, absent until the rider first reports it.
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Rider) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type RiderEarning struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	RiderID     string    `gorm:"index;not null" json:"rider_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func (e *RiderEarning) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	return nil
}
