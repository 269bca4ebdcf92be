package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/adifdwimaulana/saas-coding-test/internal/apierror"
	"github.com/adifdwimaulana/saas-coding-test/internal/dto"
	"github.com/adifdwimaulana/saas-coding-test/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// PricingHandler serves the price write and read endpoints.
type PricingHandler struct {
	svc      service.PricingService
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewPricingHandler(svc service.PricingService, rdb *redis.Client, cacheTTL time.Duration) *PricingHandler {
	return &PricingHandler{svc: svc, rdb: rdb, cacheTTL: cacheTTL}
}

// Upsert godoc
// @Summary      Create or update the price for a (customer, product) pair
// @Description  First write creates the pricing row; later writes mutate it in place. Every successful write appends one immutable history entry. Resubmitting the current price is rejected.
// @Tags         price
// @Accept       json
// @Produce      json
// @Param        body body dto.UpsertPriceRequest true "Price write"
// @Success      201  {object} dto.UpsertPriceResponse
// @Failure      400  {object} apierror.APIError
// @Failure      500  {object} apierror.APIError
// @Router       /api/v1/price [post]
func (h *PricingHandler) Upsert(c *gin.Context) {
	var req dto.UpsertPriceRequest
	if !bindAndValidate(c, &req) {
		return
	}

	result, err := h.svc.UpsertPrice(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrPriceUnchanged) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		log.Error().
			Str("customer_id", req.CustomerID).
			Str("product_id", req.ProductID).
			Err(err).
			Msg("price upsert failed")
		c.JSON(http.StatusInternalServerError, apierror.New("failed to save pricing"))
		return
	}

	c.JSON(http.StatusCreated, dto.UpsertPriceResponse{
		Message: "Pricing successfully added!",
		Data:    *result,
	})
}

// List godoc
// @Summary      List pricing rows
// @Description  Returns every pricing row matching the optional exact-match filters, joined with customer and product.
// @Tags         price
// @Produce      json
// @Param        customer_id query string false "Customer UUID"
// @Param        product_id  query string false "Product UUID"
// @Success      200 {object} dto.PricingListResponse
// @Failure      400 {object} apierror.APIError
// @Failure      500 {object} apierror.APIError
// @Router       /api/v1/price [get]
func (h *PricingHandler) List(c *gin.Context) {
	var filter dto.PricingFilter

	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid customer_id"))
			return
		}
		filter.CustomerID = &id
	}
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid product_id"))
			return
		}
		filter.ProductID = &id
	}

	ctx := c.Request.Context()

	// Fully-qualified lookups (both filters) are served read-through from
	// redis; the cache entry is invalidated by the write path.
	cacheable := h.rdb != nil && filter.CustomerID != nil && filter.ProductID != nil
	cacheKey := ""
	if cacheable {
		cacheKey = service.PriceCacheKey(*filter.CustomerID, *filter.ProductID)
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var data []dto.PricingResponse
			if jsonErr := json.Unmarshal(cached, &data); jsonErr == nil {
				c.JSON(http.StatusOK, dto.PricingListResponse{Data: data})
				return
			}
		}
	}

	data, err := h.svc.ListPrices(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("price list failed")
		c.JSON(http.StatusInternalServerError, apierror.New("failed to fetch prices"))
		return
	}

	// Populate cache — best effort, ignore errors
	if cacheable {
		if b, jsonErr := json.Marshal(data); jsonErr == nil {
			_ = h.rdb.Set(ctx, cacheKey, b, h.cacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, dto.PricingListResponse{Data: data})
}
