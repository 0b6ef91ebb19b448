package surebet

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

// QuoteTicket godoc
// @Summary Quote a ticket
// @Description Solve stake allocation and evaluate scenarios without persisting
// @Tags surebets
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Ticket quote request"
// @Success 200 {object} api.Response{data=QuoteResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/surebets/quote [post]
func (h *Handler) QuoteTicket(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	quote, err := h.service.QuoteTicket(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Bookmaker")
		case errors.Is(err, models.ErrInvalidMaxLegs),
			errors.Is(err, models.ErrInvalidReferenceIndex),
			errors.Is(err, models.ErrInvalidRoundingStep):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to quote ticket")
		}
		return
	}

	api.SuccessResponse(c, 200, "Ticket quoted successfully", quote)
}

// ConfirmTicket godoc
// @Summary Confirm a ticket
// @Description Persist the ticket, committing each stake against its bookmaker
// @Tags surebets
// @Accept json
// @Produce json
// @Param request body ConfirmRequest true "Ticket confirmation request"
// @Success 201 {object} api.Response{data=TicketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/surebets [post]
func (h *Handler) ConfirmTicket(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	ticket, err := h.service.ConfirmTicket(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInsufficientBalance):
			api.UnprocessableResponse(c, "INSUFFICIENT_BALANCE", err.Error(), nil)
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Bookmaker")
		case errors.Is(err, models.ErrInvalidOdd),
			errors.Is(err, models.ErrInvalidStake),
			errors.Is(err, models.ErrInvalidMaxLegs):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to confirm ticket")
		}
		return
	}

	api.CreatedResponse(c, "Ticket confirmed successfully", ticket)
}

// GetTicket godoc
// @Summary Get a ticket
// @Description Get a persisted ticket with its settlement progress
// @Tags surebets
// @Accept json
// @Produce json
// @Param ticket_id path string true "Ticket ID"
// @Success 200 {object} api.Response{data=TicketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/surebets/{ticket_id} [get]
func (h *Handler) GetTicket(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("ticket_id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid ticket ID format")
		return
	}

	ticket, err := h.service.GetTicket(c.Request.Context(), ticketID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Ticket")
			return
		}
		api.InternalErrorResponse(c, "Failed to get ticket")
		return
	}

	api.SuccessResponse(c, 200, "Ticket retrieved successfully", ticket)
}

// ListTickets godoc
// @Summary List tickets
// @Description List tickets with leg counts and settlement state
// @Tags surebets
// @Accept json
// @Produce json
// @Param open_only query bool false "Only tickets with pending legs"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} api.Response{data=[]TicketSummary}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/surebets [get]
func (h *Handler) ListTickets(c *gin.Context) {
	var filters TicketFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	filters.Normalize()

	summaries, total, err := h.service.ListTickets(c.Request.Context(), &filters)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to list tickets")
		return
	}

	api.PaginatedResponse(c, "Tickets retrieved successfully", summaries,
		api.NewPaginationMeta(filters.Page, filters.PerPage, total))
}

// LiquidateLeg godoc
// @Summary Settle a bet
// @Description Record a terminal result on one bet and credit the payout
// @Tags surebets
// @Accept json
// @Produce json
// @Param bet_id path string true "Bet ID"
// @Param request body SettleRequest true "Settlement request"
// @Success 200 {object} api.Response{data=TicketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/surebets/bets/{bet_id}/settle [post]
func (h *Handler) LiquidateLeg(c *gin.Context) {
	betID, err := uuid.Parse(c.Param("bet_id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid bet ID format")
		return
	}

	var req SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	ticket, err := h.service.LiquidateLeg(c.Request.Context(), betID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Bet")
		case errors.Is(err, models.ErrLegAlreadySettled):
			api.ConflictResponse(c, err.Error())
		case errors.Is(err, models.ErrInvalidLegResult):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to settle bet")
		}
		return
	}

	api.UpdatedResponse(c, "Bet settled successfully", ticket)
}
