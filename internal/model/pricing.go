package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pricing holds the current price for one (customer, product) pair.
// One authoritative row per pair — enforced by a unique composite index
// (idx_pricings_customer_product, see infra schema patches). Price writes
// mutate the row in place; every transition is logged in PriceHistory.
type Pricing struct {
	PricingID     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"pricing_id"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	EffectiveDate time.Time       `gorm:"not null" json:"effective_date"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Product  *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
