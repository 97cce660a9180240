package models

// Role values stored on user records. Client-facing registration always
// issues RoleCustomer; RoleAdmin is reserved for back-office tooling.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents an authenticated customer.
type User struct {
	BaseModel
	Name         string  `json:"name"`
	Email        string  `gorm:"uniqueIndex" json:"email"`
	PasswordHash string  `json:"-"`
	Role         string  `gorm:"default:customer" json:"role"`
	Orders       []Order `json:"orders,omitempty"`
}
