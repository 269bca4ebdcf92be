package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is an identity entity, referenced by pricing rows and never mutated here.
type Product struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"product_id"`
	Name      string    `gorm:"not null" json:"name"`
	SKU       *string   `gorm:"column:sku;uniqueIndex" json:"sku"`
	CreatedAt time.Time `json:"created_at"`
}
