package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adifdwimaulana/saas-coding-test/internal/dto"
	"github.com/adifdwimaulana/saas-coding-test/internal/model"
	"github.com/adifdwimaulana/saas-coding-test/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrPriceUnchanged is returned when the submitted price equals the current
// price for the pair. The check runs strictly before any mutation, so a
// rejected write leaves the store untouched and appends no history row.
var ErrPriceUnchanged = errors.New("price could not be the same as the previous price")

type PricingService interface {
	UpsertPrice(ctx context.Context, req dto.UpsertPriceRequest) (*dto.UpsertPriceResult, error)
	ListPrices(ctx context.Context, filter dto.PricingFilter) ([]dto.PricingResponse, error)
	ListHistory(ctx context.Context, pricingID uuid.UUID) ([]dto.PriceHistoryItem, error)
}

type pricingService struct {
	repo        repository.PricingRepository
	historyRepo repository.PriceHistoryRepository
	rdb         *redis.Client
}

func NewPricingService(
	repo repository.PricingRepository,
	historyRepo repository.PriceHistoryRepository,
	rdb *redis.Client,
) PricingService {
	return &pricingService{repo: repo, historyRepo: historyRepo, rdb: rdb}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── UpsertPrice ───────────────────────────────────────────────────────────────
// One ACID transaction per write:
//  1. SELECT ... FOR UPDATE the authoritative pricing row for the pair
//  2. no row        → INSERT pricing, history previous_price = 0
//  3. equal price   → reject, no writes performed
//  4. different     → UPDATE price + effective_date in place
//  5. INSERT exactly one history row
//
// Either all effects commit or none do.

func (s *pricingService) UpsertPrice(ctx context.Context, req dto.UpsertPriceRequest) (*dto.UpsertPriceResult, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer_id: %w", err)
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product_id: %w", err)
	}
	if req.Price == nil {
		return nil, errors.New("price is required")
	}
	price := *req.Price

	var pricing model.Pricing
	var history model.PriceHistory

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		previous, err := s.repo.FindLatestByPairTx(ctx, tx, customerID, productID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		previousPrice := decimal.Zero

		if previous == nil {
			pricing = model.Pricing{
				CustomerID:    customerID,
				ProductID:     productID,
				Price:         price,
				EffectiveDate: now,
			}
			if err := s.repo.CreateTx(ctx, tx, &pricing); err != nil {
				return err
			}
		} else {
			if previous.Price.Equal(price) {
				return ErrPriceUnchanged
			}
			previousPrice = previous.Price

			if err := s.repo.UpdatePriceTx(ctx, tx, previous.PricingID, price, now); err != nil {
				return err
			}
			pricing = *previous
			pricing.Price = price
			pricing.EffectiveDate = now
		}

		history = model.PriceHistory{
			PricingID:     pricing.PricingID,
			PreviousPrice: previousPrice,
			UpdatedPrice:  price,
		}
		return s.historyRepo.CreateTx(ctx, tx, &history)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Best-effort cache invalidation for the pair — the cached filtered
	// lookup must not serve the stale price.
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, PriceCacheKey(customerID, productID)).Err()
	}

	return &dto.UpsertPriceResult{
		NewPricing:     pricingToResponse(&pricing),
		PricingHistory: historyToItem(&history),
	}, nil
}

// ListPrices returns every pricing row matching the filter, joined with its
// customer and product. Absence of matches is an empty collection, not an error.
func (s *pricingService) ListPrices(ctx context.Context, filter dto.PricingFilter) ([]dto.PricingResponse, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PricingResponse, 0, len(rows))
	for i := range rows {
		data = append(data, pricingToResponse(&rows[i]))
	}
	return data, nil
}

func (s *pricingService) ListHistory(ctx context.Context, pricingID uuid.UUID) ([]dto.PriceHistoryItem, error) {
	rows, err := s.historyRepo.ListByPricing(ctx, pricingID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PriceHistoryItem, 0, len(rows))
	for i := range rows {
		data = append(data, historyToItem(&rows[i]))
	}
	return data, nil
}

// PriceCacheKey is the redis key of the cached pair-filtered price lookup.
func PriceCacheKey(customerID, productID uuid.UUID) string {
	return "price:" + customerID.String() + ":" + productID.String()
}

func pricingToResponse(p *model.Pricing) dto.PricingResponse {
	resp := dto.PricingResponse{
		PricingID:     p.PricingID.String(),
		CustomerID:    p.CustomerID.String(),
		ProductID:     p.ProductID.String(),
		Price:         p.Price,
		EffectiveDate: p.EffectiveDate.Format(time.RFC3339),
	}
	if p.Customer != nil {
		resp.Customer = &dto.CustomerRef{
			CustomerID: p.Customer.CustomerID.String(),
			Name:       p.Customer.Name,
			Email:      p.Customer.Email,
		}
	}
	if p.Product != nil {
		resp.Product = &dto.ProductRef{
			ProductID: p.Product.ProductID.String(),
			Name:      p.Product.Name,
			SKU:       p.Product.SKU,
		}
	}
	return resp
}

func historyToItem(h *model.PriceHistory) dto.PriceHistoryItem {
	return dto.PriceHistoryItem{
		HistoryID:     h.HistoryID.String(),
		PricingID:     h.PricingID.String(),
		PreviousPrice: h.PreviousPrice,
		UpdatedPrice:  h.UpdatedPrice,
		CreatedAt:     h.CreatedAt.Format(time.RFC3339),
	}
}
