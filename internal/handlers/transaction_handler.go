package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fiscus/internal/errors"
	"fiscus/internal/models"
	"fiscus/internal/pagination"
	"fiscus/internal/services"
	"fiscus/internal/uuid"
)

// TransactionHandler handles transaction requests outside the guarded
// record path.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the payload for creating an
// unlinked transaction. Budget-linked transactions go through
// POST /budgets/{id}/transactions instead.
type CreateTransactionRequest struct {
	Merchant string                   `json:"merchant" binding:"required,max=200"`
	Category string                   `json:"category" binding:"required,max=100"`
	Account  string                   `json:"account" binding:"required,max=100"`
	Method   models.PaymentMethod     `json:"method" binding:"required,payment_method"`
	Status   models.TransactionStatus `json:"status" binding:"required,transaction_status"`
	Amount   decimal.Decimal          `json:"amount" binding:"required"`
	Date     *time.Time               `json:"date"`
	Note     string                   `json:"note" binding:"max=500"`
}

// CreateTransaction handles the creation of an unlinked transaction.
// @Summary     Create an unlinked transaction
// @Description Create a transaction that is not linked to any budget
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	candidate := services.TransactionCandidate{
		Merchant: req.Merchant,
		Category: req.Category,
		Account:  req.Account,
		Method:   req.Method,
		Status:   req.Status,
		Amount:   req.Amount,
		Note:     req.Note,
	}
	if req.Date != nil {
		candidate.Date = *req.Date
	}

	transaction, err := h.transactionService.CreateUnlinkedTransaction(userID, candidate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions handles listing the user's transactions.
// @Summary     Get transactions
// @Description Get a paginated, filtered list of the user's transactions
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from_date  query string false "Filter from date (RFC 3339)"
// @Param       to_date    query string false "Filter to date (RFC 3339)"
// @Param       status     query string false "Filter by status (cleared/pending/flagged)"
// @Param       method     query string false "Filter by method (card/cash/transfer/mobile)"
// @Param       budget_id  query string false "Filter by budget ID"
// @Param       min_amount query string false "Minimum amount"
// @Param       max_amount query string false "Maximum amount"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetUserTransactions(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("from_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "from_date must be RFC 3339")
		}
		filter.FromDate = &t
	}
	if v := c.Query("to_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "to_date must be RFC 3339")
		}
		filter.ToDate = &t
	}
	if v := c.Query("status"); v != "" {
		s := models.TransactionStatus(v)
		switch s {
		case models.TransactionStatusCleared, models.TransactionStatusPending, models.TransactionStatusFlagged:
			filter.Status = &s
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be cleared, pending, or flagged")
		}
	}
	if v := c.Query("method"); v != "" {
		m := models.PaymentMethod(v)
		switch m {
		case models.PaymentMethodCard, models.PaymentMethodCash, models.PaymentMethodTransfer, models.PaymentMethodMobile:
			filter.Method = &m
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "method must be card, cash, transfer, or mobile")
		}
	}
	if v := c.Query("budget_id"); v != "" {
		if !uuid.IsValid(v) {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid budget_id")
		}
		filter.BudgetID = &v
	}
	if v := c.Query("min_amount"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "min_amount must be a number")
		}
		filter.MinAmount = &d
	}
	if v := c.Query("max_amount"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "max_amount must be a number")
		}
		filter.MaxAmount = &d
	}

	return filter, nil
}

// GetTransaction handles retrieving a specific transaction.
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction.
// @Summary     Delete transaction
// @Description Delete a transaction; a linked budget's spent total is updated atomically
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
