package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fiscus/internal/errors"
	"fiscus/internal/models"
	"fiscus/internal/pagination"
	"fiscus/internal/services"
)

// BudgetHandler handles budget-related requests, including the guarded
// transaction record path.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	budgetGuard   services.BudgetGuard
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, budgetGuard services.BudgetGuard) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, budgetGuard: budgetGuard}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=100"`
	Category string          `json:"category" binding:"required,min=1,max=100"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Month    int             `json:"month" binding:"required,min=1,max=12"`
	Year     int             `json:"year" binding:"required,min=1000,max=9999"`
	Note     string          `json:"note" binding:"max=500"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
// Spent is not accepted here; see CorrectSpentRequest.
type UpdateBudgetRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Category *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Amount   *decimal.Decimal `json:"amount"`
	Month    *int             `json:"month" binding:"omitempty,min=1,max=12"`
	Year     *int             `json:"year" binding:"omitempty,min=1000,max=9999"`
	Note     *string          `json:"note" binding:"omitempty,max=500"`
}

// CorrectSpentRequest represents the administrative spent override payload.
type CorrectSpentRequest struct {
	Spent decimal.Decimal `json:"spent"`
}

// RecordTransactionRequest represents the payload for recording a
// transaction against a budget.
type RecordTransactionRequest struct {
	Merchant    string                   `json:"merchant" binding:"required,max=200"`
	Category    string                   `json:"category" binding:"required,max=100"`
	Account     string                   `json:"account" binding:"required,max=100"`
	Method      models.PaymentMethod     `json:"method" binding:"required,payment_method"`
	Status      models.TransactionStatus `json:"status" binding:"required,transaction_status"`
	Amount      decimal.Decimal          `json:"amount" binding:"required"`
	Date        *time.Time               `json:"date"`
	Note        string                   `json:"note" binding:"max=500"`
	TrackAsGoal bool                     `json:"track_as_goal"`
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Description Create a new budget for a category and month/year period
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Budget already exists for this period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.CreateBudget(userID, req.Name, req.Category, req.Amount, req.Month, req.Year, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing budgets for the authenticated user.
// @Summary     Get budgets
// @Description Get a paginated list of budgets for the authenticated user
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month     query int false "Filter by month (1-12)"
// @Param       year      query int false "Filter by year"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Budget] "Paginated budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
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

	month, err := parseOptionalInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}
	year, err := parseOptionalInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.budgetService.GetUserBudgets(userID, page, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseOptionalInt(c *gin.Context, param string) (*int, error) {
	v := c.Query(param)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, param+" must be an integer")
	}
	return &n, nil
}

// GetBudget handles retrieving a specific budget.
// @Summary     Get budget by ID
// @Description Get a specific budget by ID
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} models.Budget "Budget details"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles updating an existing budget.
// @Summary     Update budget
// @Description Update a budget's name, category, amount, period, or note
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Updated budget details"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input or budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     409 {object} ErrorResponse "Budget already exists for this period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.UpdateBudget(userID, budgetID, services.BudgetUpdateFields{
		Name:     req.Name,
		Category: req.Category,
		Amount:   req.Amount,
		Month:    req.Month,
		Year:     req.Year,
		Note:     req.Note,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// CorrectSpent handles the administrative spent override.
// @Summary     Correct spent total
// @Description Administrative correction of a budget's cached spent total
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Budget ID"
// @Param       request body CorrectSpentRequest true "Corrected spent total"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input or budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/spent [put]
func (h *BudgetHandler) CorrectSpent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CorrectSpentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.CorrectSpent(userID, budgetID, req.Spent)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget and its transactions.
// @Summary     Delete budget
// @Description Delete a budget and all of its transactions
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": budgetID, "message": "Budget deleted successfully"})
}

// RecordTransaction handles recording a transaction against a budget
// through the budget guard.
// @Summary     Record a transaction against a budget
// @Description Atomically record a transaction, enforce the budget ceiling, and optionally spin a goal
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Budget ID"
// @Param       request body RecordTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     422 {object} ErrorResponse "Budget ceiling exceeded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/transactions [post]
func (h *BudgetHandler) RecordTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	candidate := services.TransactionCandidate{
		Merchant:    req.Merchant,
		Category:    req.Category,
		Account:     req.Account,
		Method:      req.Method,
		Status:      req.Status,
		Amount:      req.Amount,
		Note:        req.Note,
		TrackAsGoal: req.TrackAsGoal,
	}
	if req.Date != nil {
		candidate.Date = *req.Date
	}

	transaction, budget, err := h.budgetGuard.RecordTransaction(userID, budgetID, candidate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction, "budget": budget})
}

// GetBudgetProgress handles retrieving the spending progress for a budget.
// @Summary     Get budget progress
// @Description Get spent vs ceiling progress for a budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} services.BudgetProgress "Budget progress"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/progress [get]
func (h *BudgetHandler) GetBudgetProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	progress, err := h.budgetService.GetBudgetProgress(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
