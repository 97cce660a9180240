package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses set by the server; clients never write these.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusShipped = "shipped"
)

type Order struct {
	BaseModel
	UserID             uuid.UUID   `gorm:"type:uuid;index" json:"user_id"`
	User               *User       `json:"user,omitempty"`
	OrderNumber        string      `gorm:"uniqueIndex" json:"order_number"`
	Status             string      `json:"status"`
	PlacedAt           time.Time   `json:"placed_at"`
	ShippingAddress    string      `json:"shipping_address"`
	ShippingCity       string      `json:"shipping_city"`
	ShippingPostalCode string      `json:"shipping_postal_code"`
	PaymentMethod      string      `json:"payment_method"`
	TotalPrice         float64     `json:"total_price"`
	Items              []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid" json:"product_id"`
	StoreID   uuid.UUID `gorm:"type:uuid" json:"store_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Brand     string    `json:"brand"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	LineTotal float64   `json:"line_total"`
}
