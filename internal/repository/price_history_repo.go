package repository

import (
	"context"

	"github.com/adifdwimaulana/saas-coding-test/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PriceHistoryRepository interface {
	// CreateTx appends one history row inside the caller's transaction.
	CreateTx(ctx context.Context, tx *gorm.DB, h *model.PriceHistory) error
	ListByPricing(ctx context.Context, pricingID uuid.UUID) ([]model.PriceHistory, error)
}

type priceHistoryRepo struct{ db *gorm.DB }

func NewPriceHistoryRepository(db *gorm.DB) PriceHistoryRepository {
	return &priceHistoryRepo{db: db}
}

func (r *priceHistoryRepo) CreateTx(ctx context.Context, tx *gorm.DB, h *model.PriceHistory) error {
	return tx.WithContext(ctx).Create(h).Error
}

// ListByPricing returns every transition of one pricing row, oldest first
// (append-only table, so this matches insert order).
func (r *priceHistoryRepo) ListByPricing(ctx context.Context, pricingID uuid.UUID) ([]model.PriceHistory, error) {
	var rows []model.PriceHistory
	err := r.db.WithContext(ctx).
		Where("pricing_id = ?", pricingID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
