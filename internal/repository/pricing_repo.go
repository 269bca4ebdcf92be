package repository

import (
	"context"
	"errors"
	"time"

	"github.com/adifdwimaulana/saas-coding-test/internal/dto"
	"github.com/adifdwimaulana/saas-coding-test/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PricingRepository defines the data access contract for pricing rows.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type PricingRepository interface {
	// List returns every pricing row matching the filter, joined with its
	// referenced customer and product.
	List(ctx context.Context, filter dto.PricingFilter) ([]model.Pricing, error)

	// Used inside transactions — callers must pass the tx instance
	FindLatestByPairTx(ctx context.Context, tx *gorm.DB, customerID, productID uuid.UUID) (*model.Pricing, error)
	CreateTx(ctx context.Context, tx *gorm.DB, p *model.Pricing) error
	UpdatePriceTx(ctx context.Context, tx *gorm.DB, pricingID uuid.UUID, price decimal.Decimal, effectiveDate time.Time) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type pricingRepo struct{ db *gorm.DB }

func NewPricingRepository(db *gorm.DB) PricingRepository { return &pricingRepo{db: db} }

func (r *pricingRepo) DB() *gorm.DB { return r.db }

func (r *pricingRepo) List(ctx context.Context, filter dto.PricingFilter) ([]model.Pricing, error) {
	q := r.db.WithContext(ctx).Model(&model.Pricing{})

	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ProductID != nil {
		q = q.Where("product_id = ?", *filter.ProductID)
	}

	var rows []model.Pricing
	err := q.Preload("Customer").Preload("Product").Find(&rows).Error
	return rows, err
}

// FindLatestByPairTx returns the authoritative pricing row for one
// (customer, product) pair, or (nil, nil) when no prior price exists.
// The row is locked FOR UPDATE so concurrent writes for the same pair
// serialize on the store.
func (r *pricingRepo) FindLatestByPairTx(ctx context.Context, tx *gorm.DB, customerID, productID uuid.UUID) (*model.Pricing, error) {
	var p model.Pricing
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Order("effective_date DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pricingRepo) CreateTx(ctx context.Context, tx *gorm.DB, p *model.Pricing) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *pricingRepo) UpdatePriceTx(ctx context.Context, tx *gorm.DB, pricingID uuid.UUID, price decimal.Decimal, effectiveDate time.Time) error {
	return tx.WithContext(ctx).Model(&model.Pricing{}).
		Where("pricing_id = ?", pricingID).
		Updates(map[string]interface{}{
			"price":          price,
			"effective_date": effectiveDate,
		}).Error
}
