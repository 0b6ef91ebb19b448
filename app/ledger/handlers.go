package ledger

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

// ListTransactions godoc
// @Summary List ledger transactions
// @Description List cash postings, optionally filtered by bookmaker and type
// @Tags ledger
// @Accept json
// @Produce json
// @Param bookmaker_id query string false "Bookmaker ID"
// @Param type query string false "Transaction type"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} api.Response{data=[]TransactionResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	var filters TransactionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	filters.Normalize()

	transactions, total, err := h.service.ListTransactions(c.Request.Context(), &filters)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to list transactions")
		return
	}

	api.PaginatedResponse(c, "Transactions retrieved successfully", transactions,
		api.NewPaginationMeta(filters.Page, filters.PerPage, total))
}

// CreateAdjustment godoc
// @Summary Post a manual adjustment
// @Description Deposit, withdraw or adjust a bookmaker balance with a ledger posting
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body AdjustmentRequest true "Adjustment request"
// @Success 201 {object} api.Response{data=TransactionResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/transactions/adjustments [post]
func (h *Handler) CreateAdjustment(c *gin.Context) {
	var req AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	transaction, err := h.service.CreateAdjustment(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Bookmaker")
		case errors.Is(err, models.ErrInsufficientBalance):
			api.UnprocessableResponse(c, "INSUFFICIENT_BALANCE", err.Error(), nil)
		case errors.Is(err, models.ErrInvalidTransactionAmount),
			errors.Is(err, models.ErrInvalidTransactionType):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to post adjustment")
		}
		return
	}

	api.CreatedResponse(c, "Adjustment posted successfully", transaction)
}
