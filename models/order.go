package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses, in the usual delivery flow
	OrderStatusPending   OrderStatus = "PENDING"   // Placed by consumer, awaiting pharmacy
	OrderStatusAccepted  OrderStatus = "ACCEPTED"  // Pharmacy confirmed the order
	OrderStatusReady     OrderStatus = "READY"     // Packed, waiting for a rider
	OrderStatusPicked    OrderStatus = "PICKED"    // Rider collected the package
	OrderStatusDelivered OrderStatus = "DELIVERED" // Consumer received the order
	OrderStatusCancelled OrderStatus = "CANCELLED" // Cancelled by pharmacy or admin

	// Payment statuses
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

type Order struct {
	ID         string   `gorm:"primaryKey" json:"id"`
	ConsumerID string   `gorm:"index;not null" json:"consumer_id"`
	Consumer   User     `gorm:"foreignKey:ConsumerID" json:"consumer,omitempty"`
	PharmacyID string   `gorm:"index;not null" json:"pharmacy_id"`
	Pharmacy   Pharmacy `gorm:"foreignKey:PharmacyID" json:"pharmacy,omitempty"`
	// RiderID stays NULL until a rider claims the order; it is assigned
	// exactly once.
	RiderID           *string       `gorm:"index" json:"rider_id"`
	Rider             *Rider        `gorm:"foreignKey:RiderID" json:"rider,omitempty"`
	Items             []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status            OrderStatus   `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	PaymentStatus     PaymentStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"payment_status"`
	PaymentMethod     string        `json:"payment_method"`
	Notes             string        `json:"notes"`
	PrescriptionURL   string        `json:"prescription_url"`
	Subtotal          float64       `json:"subtotal"`
	DeliveryFee       float64       `json:"delivery_fee"`
	Total             float64       `json:"total"`
	DeliveryAddress   string        `json:"delivery_address"`
	DeliveryLatitude  float64       `json:"delivery_latitude"`
	DeliveryLongitude float64       `json:"delivery_longitude"`
	CreatedAt         time.Time     `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// ShortID returns the first 8 characters of the order id, used in
// human-facing references like earning descriptions.
func (o *Order) ShortID() string {
	if len(o.ID) < 8 {
		return o.ID
	}
	return o.ID[:8]
}

// OrderItem is a price snapshot taken at checkout time. Items are created
// together with their order and never modified afterwards.
type OrderItem struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	OrderID   string  `gorm:"index;not null" json:"order_id"`
	ProductID string  `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
