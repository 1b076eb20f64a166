package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string
type UserStatus string

const (
	RoleConsumer UserRole = "CONSUMER"
	RolePharmacy UserRole = "PHARMACY"
	RoleRider    UserRole = "RIDER"
	RoleAdmin    UserRole = "ADMIN"

	// User statuses: PENDING accounts await admin verification,
	// BLOCKED accounts cannot sign in.
	UserStatusPending UserStatus = "PENDING"
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
)

type User struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Phone     string     `gorm:"unique;not null" json:"phone"`
	Password  string     `gorm:"not null" json:"-"`
	Role      UserRole   `gorm:"type:VARCHAR(20);not null" json:"role"`
	Status    UserStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	Pharmacy  *Pharmacy  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"pharmacy,omitempty"`
	Rider     *Rider     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"rider,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
