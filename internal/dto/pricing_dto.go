package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type UpsertPriceRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	ProductID  string `json:"product_id"  validate:"required,uuid"`
	// Pointer so presence is distinguishable from a legitimate zero price:
	// nil = field absent, &0 = explicit price of 0.
	Price *decimal.Decimal `json:"price" validate:"required"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// PricingFilter enumerates the optional exact-match filters of GET /price.
// Both fields are combinable; nil means "no filter on this field".
type PricingFilter struct {
	CustomerID *uuid.UUID
	ProductID  *uuid.UUID
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CustomerRef struct {
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	Email      *string `json:"email"`
}

type ProductRef struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	SKU       *string `json:"sku"`
}

type PricingResponse struct {
	PricingID     string          `json:"pricing_id"`
	CustomerID    string          `json:"customer_id"`
	ProductID     string          `json:"product_id"`
	Price         decimal.Decimal `json:"price"`
	EffectiveDate string          `json:"effective_date"`

	Customer *CustomerRef `json:"customer,omitempty"`
	Product  *ProductRef  `json:"product,omitempty"`
}

type PriceHistoryItem struct {
	HistoryID     string          `json:"history_id"`
	PricingID     string          `json:"pricing_id"`
	PreviousPrice decimal.Decimal `json:"previous_price"`
	UpdatedPrice  decimal.Decimal `json:"updated_price"`
	CreatedAt     string          `json:"created_at"`
}

// UpsertPriceResult is the payload of a successful price write: the
// created/updated pricing row together with the appended history row.
type UpsertPriceResult struct {
	NewPricing     PricingResponse  `json:"newPricing"`
	PricingHistory PriceHistoryItem `json:"pricingHistory"`
}

type UpsertPriceResponse struct {
	Message string            `json:"message"`
	Data    UpsertPriceResult `json:"data"`
}

type PricingListResponse struct {
	Data []PricingResponse `json:"data"`
}

type PriceHistoryListResponse struct {
	Data []PriceHistoryItem `json:"data"`
}
