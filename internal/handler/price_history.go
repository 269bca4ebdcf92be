package handler

import (
	"net/http"

	"github.com/adifdwimaulana/saas-coding-test/internal/apierror"
	"github.com/adifdwimaulana/saas-coding-test/internal/dto"
	"github.com/adifdwimaulana/saas-coding-test/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PriceHistoryHandler serves the immutable price transition log.
type PriceHistoryHandler struct {
	svc service.PricingService
}

func NewPriceHistoryHandler(svc service.PricingService) *PriceHistoryHandler {
	return &PriceHistoryHandler{svc: svc}
}

// ListByPricing godoc
// @Summary      Price change history of one pricing row
// @Description  Returns every price transition of the pricing row, oldest first. Unknown ids yield an empty collection.
// @Tags         price
// @Produce      json
// @Param        pricing_id path string true "Pricing UUID"
// @Success      200 {object} dto.PriceHistoryListResponse
// @Failure      400 {object} apierror.APIError
// @Failure      500 {object} apierror.APIError
// @Router       /api/v1/price-history/{pricing_id} [get]
func (h *PriceHistoryHandler) ListByPricing(c *gin.Context) {
	pricingID, err := uuid.Parse(c.Param("pricing_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid pricing_id"))
		return
	}

	data, err := h.svc.ListHistory(c.Request.Context(), pricingID)
	if err != nil {
		log.Error().Str("pricing_id", pricingID.String()).Err(err).Msg("price history list failed")
		c.JSON(http.StatusInternalServerError, apierror.New("failed to fetch price history"))
		return
	}

	c.JSON(http.StatusOK, dto.PriceHistoryListResponse{Data: data})
}
