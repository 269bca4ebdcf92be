package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceHistory records one price transition of a pricing row.
// Records are immutable — never updated or deleted. Exactly one row is
// appended per successful price write; a first write records previous_price 0.
type PriceHistory struct {
	HistoryID     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"history_id"`
	PricingID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"pricing_id"`
	PreviousPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"previous_price"`
	UpdatedPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"updated_price"`
	CreatedAt     time.Time       `json:"created_at"`

	Pricing *Pricing `gorm:"foreignKey:PricingID" json:"-"`
}
