package bookmakers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joefazee/surebook/app/api"
	"github.com/joefazee/surebook/models"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreatePartner godoc
// @Summary Create a partner
// @Description Register a new account holder
// @Tags partners
// @Accept json
// @Produce json
// @Param request body CreatePartnerRequest true "Partner creation request"
// @Success 201 {object} api.Response{data=PartnerResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/partners [post]
func (h *Handler) CreatePartner(c *gin.Context) {
	var req CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	partner, err := h.service.CreatePartner(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidPartnerName) {
			api.BadRequestResponse(c, err.Error())
			return
		}
		api.InternalErrorResponse(c, "Failed to create partner")
		return
	}

	api.CreatedResponse(c, "Partner created successfully", partner)
}

// GetPartners godoc
// @Summary List partners
// @Description List all account holders
// @Tags partners
// @Accept json
// @Produce json
// @Success 200 {object} api.Response{data=[]PartnerResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/partners [get]
func (h *Handler) GetPartners(c *gin.Context) {
	partners, err := h.service.GetPartners(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to get partners")
		return
	}
	api.ListResponse(c, "Partners retrieved successfully", partners, len(partners))
}

// UpdatePartner godoc
// @Summary Update a partner
// @Description Update an account holder
// @Tags partners
// @Accept json
// @Produce json
// @Param id path string true "Partner ID"
// @Param request body UpdatePartnerRequest true "Partner update request"
// @Success 200 {object} api.Response{data=PartnerResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/partners/{id} [patch]
func (h *Handler) UpdatePartner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid partner ID format")
		return
	}

	var req UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	partner, err := h.service.UpdatePartner(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Partner")
		case errors.Is(err, models.ErrInvalidPartnerName):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to update partner")
		}
		return
	}

	api.UpdatedResponse(c, "Partner updated successfully", partner)
}

// CreateBookmaker godoc
// @Summary Create a bookmaker account
// @Description Register a bookmaker account under a partner
// @Tags bookmakers
// @Accept json
// @Produce json
// @Param request body CreateBookmakerRequest true "Bookmaker creation request"
// @Success 201 {object} api.Response{data=BookmakerResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bookmakers [post]
func (h *Handler) CreateBookmaker(c *gin.Context) {
	var req CreateBookmakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	bookmaker, err := h.service.CreateBookmaker(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Partner")
		case errors.Is(err, models.ErrInvalidCurrencyCode),
			errors.Is(err, models.ErrNegativeBalance),
			errors.Is(err, models.ErrInvalidBookmakerName):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to create bookmaker")
		}
		return
	}

	api.CreatedResponse(c, "Bookmaker created successfully", bookmaker)
}

// GetBookmaker godoc
// @Summary Get a bookmaker account
// @Description Get one bookmaker with its balances and committed stake
// @Tags bookmakers
// @Accept json
// @Produce json
// @Param id path string true "Bookmaker ID"
// @Success 200 {object} api.Response{data=BookmakerResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bookmakers/{id} [get]
func (h *Handler) GetBookmaker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid bookmaker ID format")
		return
	}

	bookmaker, err := h.service.GetBookmaker(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Bookmaker")
			return
		}
		api.InternalErrorResponse(c, "Failed to get bookmaker")
		return
	}

	api.SuccessResponse(c, 200, "Bookmaker retrieved successfully", bookmaker)
}

// GetBookmakers godoc
// @Summary List bookmaker accounts
// @Description List bookmakers, optionally filtered by partner
// @Tags bookmakers
// @Accept json
// @Produce json
// @Param partner_id query string false "Partner ID"
// @Success 200 {object} api.Response{data=[]BookmakerResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bookmakers [get]
func (h *Handler) GetBookmakers(c *gin.Context) {
	var partnerID *uuid.UUID
	if raw := c.Query("partner_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			api.BadRequestResponse(c, "Invalid partner ID format")
			return
		}
		partnerID = &id
	}

	bookmakers, err := h.service.GetBookmakers(c.Request.Context(), partnerID)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to get bookmakers")
		return
	}
	api.ListResponse(c, "Bookmakers retrieved successfully", bookmakers, len(bookmakers))
}

// UpdateBookmaker godoc
// @Summary Update a bookmaker account
// @Description Rename or toggle a bookmaker account; balances move through the ledger
// @Tags bookmakers
// @Accept json
// @Produce json
// @Param id path string true "Bookmaker ID"
// @Param request body UpdateBookmakerRequest true "Bookmaker update request"
// @Success 200 {object} api.Response{data=BookmakerResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bookmakers/{id} [patch]
func (h *Handler) UpdateBookmaker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid bookmaker ID format")
		return
	}

	var req UpdateBookmakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	bookmaker, err := h.service.UpdateBookmaker(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Bookmaker")
		case errors.Is(err, models.ErrInvalidBookmakerName):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to update bookmaker")
		}
		return
	}

	api.UpdatedResponse(c, "Bookmaker updated successfully", bookmaker)
}
