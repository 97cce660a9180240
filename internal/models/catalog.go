package models

import "github.com/google/uuid"

// Store is a physical shop customers can search by geolocation.
type Store struct {
	BaseModel
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	Products  []Product `json:"products,omitempty"`
}

// Product is a catalog entry order items reference.
type Product struct {
	BaseModel
	Name     string     `json:"name"`
	Category string     `gorm:"index" json:"category"`
	Brand    string     `gorm:"index" json:"brand"`
	Price    float64    `json:"price"`
	InStock  bool       `gorm:"default:true" json:"in_stock"`
	StoreID  *uuid.UUID `gorm:"type:uuid" json:"store_id"`
	Store    *Store     `json:"store,omitempty"`
}
