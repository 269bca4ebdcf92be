package handler

import (
	"net/http"

	"github.com/adifdwimaulana/saas-coding-test/internal/apierror"
	"github.com/adifdwimaulana/saas-coding-test/internal/dto"
	"github.com/adifdwimaulana/saas-coding-test/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CustomersHandler struct {
	svc service.CustomerService
}

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

// List godoc
// @Summary      List all customers
// @Tags         customers
// @Produce      json
// @Success      200 {object} dto.CustomerListResponse
// @Failure      500 {object} apierror.APIError
// @Router       /api/v1/customers [get]
func (h *CustomersHandler) List(c *gin.Context) {
	data, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("customer list failed")
		c.JSON(http.StatusInternalServerError, apierror.New("failed to fetch customers"))
		return
	}

	c.JSON(http.StatusOK, dto.CustomerListResponse{Data: data})
}
