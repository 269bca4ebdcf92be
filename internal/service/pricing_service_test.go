package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adifdwimaulana/saas-coding-test/internal/dto"
	"github.com/adifdwimaulana/saas-coding-test/internal/model"
	"github.com/adifdwimaulana/saas-coding-test/internal/repository"
	"github.com/adifdwimaulana/saas-coding-test/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubPricingRepo is an in-memory PricingRepository for testing.
type stubPricingRepo struct {
	rows    map[uuid.UUID]*model.Pricing // by pricing_id
	creates int
	updates int
}

func newStubPricingRepo() *stubPricingRepo {
	return &stubPricingRepo{rows: make(map[uuid.UUID]*model.Pricing)}
}

func (r *stubPricingRepo) DB() *gorm.DB { return nil }

func (r *stubPricingRepo) List(_ context.Context, filter dto.PricingFilter) ([]model.Pricing, error) {
	var out []model.Pricing
	for _, p := range r.rows {
		if filter.CustomerID != nil && p.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.ProductID != nil && p.ProductID != *filter.ProductID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPricingRepo) FindLatestByPairTx(_ context.Context, _ *gorm.DB, customerID, productID uuid.UUID) (*model.Pricing, error) {
	var latest *model.Pricing
	for _, p := range r.rows {
		if p.CustomerID != customerID || p.ProductID != productID {
			continue
		}
		if latest == nil || p.EffectiveDate.After(latest.EffectiveDate) {
			latest = p
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *stubPricingRepo) CreateTx(_ context.Context, _ *gorm.DB, p *model.Pricing) error {
	if p.PricingID == uuid.Nil {
		p.PricingID = uuid.New()
	}
	cp := *p
	r.rows[p.PricingID] = &cp
	r.creates++
	return nil
}

func (r *stubPricingRepo) UpdatePriceTx(_ context.Context, _ *gorm.DB, pricingID uuid.UUID, price decimal.Decimal, effectiveDate time.Time) error {
	p, ok := r.rows[pricingID]
	if !ok {
		return errors.New("not found")
	}
	p.Price = price
	p.EffectiveDate = effectiveDate
	r.updates++
	return nil
}

var _ repository.PricingRepository = (*stubPricingRepo)(nil)

// stubHistoryRepo captures appended history rows for assertion.
type stubHistoryRepo struct {
	rows       []model.PriceHistory
	failCreate bool
}

func (r *stubHistoryRepo) CreateTx(_ context.Context, _ *gorm.DB, h *model.PriceHistory) error {
	if r.failCreate {
		return errors.New("history insert failed")
	}
	if h.HistoryID == uuid.Nil {
		h.HistoryID = uuid.New()
	}
	r.rows = append(r.rows, *h)
	return nil
}

func (r *stubHistoryRepo) ListByPricing(_ context.Context, pricingID uuid.UUID) ([]model.PriceHistory, error) {
	var out []model.PriceHistory
	for _, h := range r.rows {
		if h.PricingID == pricingID {
			out = append(out, h)
		}
	}
	return out, nil
}

var _ repository.PriceHistoryRepository = (*stubHistoryRepo)(nil)

func buildPricingSvc() (service.PricingService, *stubPricingRepo, *stubHistoryRepo) {
	pricingRepo := newStubPricingRepo()
	historyRepo := &stubHistoryRepo{}
	svc := service.NewPricingService(pricingRepo, historyRepo, nil)
	return svc, pricingRepo, historyRepo
}

func upsertReq(customerID, productID uuid.UUID, price string) dto.UpsertPriceRequest {
	p := decimal.RequireFromString(price)
	return dto.UpsertPriceRequest{
		CustomerID: customerID.String(),
		ProductID:  productID.String(),
		Price:      &p,
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestUpsertPrice_FirstWriteCreatesRowAndHistory(t *testing.T) {
	svc, pricingRepo, historyRepo := buildPricingSvc()
	customerID, productID := uuid.New(), uuid.New()

	result, err := svc.UpsertPrice(context.Background(), upsertReq(customerID, productID, "10.00"))
	require.NoError(t, err)

	assert.Equal(t, 1, pricingRepo.creates)
	assert.Equal(t, 0, pricingRepo.updates)
	require.Len(t, historyRepo.rows, 1)

	assert.True(t, decimal.RequireFromString("10.00").Equal(result.NewPricing.Price))
	assert.True(t, decimal.Zero.Equal(result.PricingHistory.PreviousPrice))
	assert.True(t, decimal.RequireFromString("10.00").Equal(result.PricingHistory.UpdatedPrice))
	assert.Equal(t, result.NewPricing.PricingID, result.PricingHistory.PricingID)
}

func TestUpsertPrice_UpdateMutatesSameRow(t *testing.T) {
	svc, pricingRepo, historyRepo := buildPricingSvc()
	customerID, productID := uuid.New(), uuid.New()

	first, err := svc.UpsertPrice(context.Background(), upsertReq(customerID, productID, "10.00"))
	require.NoError(t, err)

	second, err := svc.UpsertPrice(context.Background(), upsertReq(customerID, productID, "12.50"))
	require.NoError(t, err)

	// Same row mutated in place — no new pricing row
	assert.Equal(t, first.NewPricing.PricingID, second.NewPricing.PricingID)
	assert.Equal(t, 1, pricingRepo.creates)
	assert.Equal(t, 1, pricingRepo.updates)

	require.Len(t, historyRepo.rows, 2)
	assert.True(t, decimal.RequireFromString("10.00").Equal(second.PricingHistory.PreviousPrice))
	assert.True(t, decimal.RequireFromString("12.50").Equal(second.PricingHistory.UpdatedPrice))
}

func TestUpsertPrice_SamePriceRejectedWithoutMutation(t *testing.T) {
	svc, pricingRepo, historyRepo := buildPricingSvc()
	customerID, productID := uuid.New(), uuid.New()

	_, err := svc.UpsertPrice(context.Background(), upsertReq(customerID, productID, "12.50"))
	require.NoError(t, err)

	_, err = svc.UpsertPrice(context.Background(), upsertReq(customerID, productID, "12.50"))
	require.ErrorIs(t, err, service.ErrPriceUnchanged)

	// No history appended, price unchanged, no write performed
	assert.Len(t, historyRepo.rows, 1)
	assert.Equal(t, 0, pricingRepo.updates)
	for _, p := range pricingRepo.rows {
		assert.True(t, decimal.RequireFromString("12.50").Equal(p.Price))
	}
}

func TestUpsertPrice_HistoryFailureAbortsOperation(t *testing.T) {
	svc, _, historyRepo := buildPricingSvc()
	historyRepo.failCreate = true
	customerID, productID := uuid.New(), uuid.New()

	_, err := svc.UpsertPrice(context.Background(), upsertReq(customerID, productID, "10.00"))
	require.Error(t, err)
	assert.Empty(t, historyRepo.rows)
}

func TestUpsertPrice_InvalidIdentifiers(t *testing.T) {
	svc, pricingRepo, _ := buildPricingSvc()

	ten := decimal.RequireFromString("10.00")
	_, err := svc.UpsertPrice(context.Background(), dto.UpsertPriceRequest{
		CustomerID: "not-a-uuid",
		ProductID:  uuid.NewString(),
		Price:      &ten,
	})
	require.Error(t, err)
	assert.Equal(t, 0, pricingRepo.creates)
}

func TestUpsertPrice_MissingPrice(t *testing.T) {
	svc, pricingRepo, _ := buildPricingSvc()

	_, err := svc.UpsertPrice(context.Background(), dto.UpsertPriceRequest{
		CustomerID: uuid.NewString(),
		ProductID:  uuid.NewString(),
	})
	require.Error(t, err)
	assert.Equal(t, 0, pricingRepo.creates)
}

func TestUpsertPrice_ZeroPriceIsValid(t *testing.T) {
	svc, pricingRepo, historyRepo := buildPricingSvc()
	customerID, productID := uuid.New(), uuid.New()

	result, err := svc.UpsertPrice(context.Background(), upsertReq(customerID, productID, "0"))
	require.NoError(t, err)

	assert.Equal(t, 1, pricingRepo.creates)
	require.Len(t, historyRepo.rows, 1)
	assert.True(t, decimal.Zero.Equal(result.NewPricing.Price))
	assert.True(t, decimal.Zero.Equal(result.PricingHistory.UpdatedPrice))
}

func TestUpsertPrice_Scenario(t *testing.T) {
	svc, pricingRepo, historyRepo := buildPricingSvc()
	customerID, productID := uuid.New(), uuid.New()
	ctx := context.Background()

	first, err := svc.UpsertPrice(ctx, upsertReq(customerID, productID, "10.00"))
	require.NoError(t, err)
	assert.True(t, decimal.Zero.Equal(first.PricingHistory.PreviousPrice))

	second, err := svc.UpsertPrice(ctx, upsertReq(customerID, productID, "12.50"))
	require.NoError(t, err)
	assert.Equal(t, first.NewPricing.PricingID, second.NewPricing.PricingID)
	assert.True(t, decimal.RequireFromString("10.00").Equal(second.PricingHistory.PreviousPrice))
	assert.True(t, decimal.RequireFromString("12.50").Equal(second.PricingHistory.UpdatedPrice))

	_, err = svc.UpsertPrice(ctx, upsertReq(customerID, productID, "12.50"))
	require.ErrorIs(t, err, service.ErrPriceUnchanged)
	assert.Len(t, historyRepo.rows, 2)
	assert.Equal(t, 1, pricingRepo.creates)
}

func TestListPrices_FilterCorrectness(t *testing.T) {
	svc, _, _ := buildPricingSvc()
	ctx := context.Background()

	c1, c2 := uuid.New(), uuid.New()
	p1, p2 := uuid.New(), uuid.New()

	for _, pair := range []struct{ c, p uuid.UUID }{{c1, p1}, {c1, p2}, {c2, p1}} {
		_, err := svc.UpsertPrice(ctx, upsertReq(pair.c, pair.p, "5.00"))
		require.NoError(t, err)
	}

	all, err := svc.ListPrices(ctx, dto.PricingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byProduct, err := svc.ListPrices(ctx, dto.PricingFilter{ProductID: &p1})
	require.NoError(t, err)
	require.Len(t, byProduct, 2)
	for _, row := range byProduct {
		assert.Equal(t, p1.String(), row.ProductID)
	}

	both, err := svc.ListPrices(ctx, dto.PricingFilter{CustomerID: &c1, ProductID: &p1})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, c1.String(), both[0].CustomerID)
	assert.Equal(t, p1.String(), both[0].ProductID)
}

func TestListHistory_UnknownPricingReturnsEmpty(t *testing.T) {
	svc, _, _ := buildPricingSvc()

	rows, err := svc.ListHistory(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
