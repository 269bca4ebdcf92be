package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is an identity entity owned by the customer-management domain.
// The pricing service references customers by id and never mutates them.
type Customer struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"customer_id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      *string   `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}
