package rates

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/surebook/app/api"
	"github.com/joefazee/surebook/models"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListRates godoc
// @Summary List exchange rates
// @Description List all configured exchange rates against the dominant currency
// @Tags rates
// @Accept json
// @Produce json
// @Success 200 {object} api.Response{data=[]RateResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/rates [get]
func (h *Handler) ListRates(c *gin.Context) {
	rates, err := h.service.ListRates(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to list rates")
		return
	}
	api.ListResponse(c, "Rates retrieved successfully", rates, len(rates))
}

// UpsertRate godoc
// @Summary Set an exchange rate
// @Description Create or update the rate for one currency
// @Tags rates
// @Accept json
// @Produce json
// @Param request body UpsertRateRequest true "Rate request"
// @Success 200 {object} api.Response{data=RateResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/rates [put]
func (h *Handler) UpsertRate(c *gin.Context) {
	var req UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	rate, err := h.service.UpsertRate(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCurrencyCode),
			errors.Is(err, models.ErrInvalidRate):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to upsert rate")
		}
		return
	}

	api.UpdatedResponse(c, "Rate saved successfully", rate)
}

// DeleteRate godoc
// @Summary Delete an exchange rate
// @Description Remove the rate for one currency
// @Tags rates
// @Accept json
// @Produce json
// @Param currency_code path string true "Currency code"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/rates/{currency_code} [delete]
func (h *Handler) DeleteRate(c *gin.Context) {
	err := h.service.DeleteRate(c.Request.Context(), c.Param("currency_code"))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Rate")
		case errors.Is(err, models.ErrInvalidCurrencyCode):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to delete rate")
		}
		return
	}
	api.DeletedResponse(c, "Rate deleted successfully")
}
