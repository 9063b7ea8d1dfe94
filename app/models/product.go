package models

import "time"

// DefaultCategory is the storage-layer sentinel for rows created without a
// category (seed data; the validated API path always supplies one).
const DefaultCategory = "Uncategorized"

// Product is the sole persistent entity of the catalog. JSON field names are
// camelCase to match the admin UI contract.
type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"                       json:"id"`
	Name        string    `gorm:"size:255;not null"                              json:"name"`
	Price       float64   `gorm:"not null"                                       json:"price"`
	Description string    `gorm:"type:text;not null"                             json:"description"`
	Stock       uint      `gorm:"not null;default:0"                             json:"stock"`
	Category    string    `gorm:"size:255;not null;default:Uncategorized"        json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }
