package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fiscus/internal/errors"
	"fiscus/internal/pagination"
	"fiscus/internal/services"
)

// IncomeHandler handles income-related requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeRequest represents the request payload for recording an income.
type CreateIncomeRequest struct {
	Source string          `json:"source" binding:"required,min=1,max=200"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   *time.Time      `json:"date"`
	Note   string          `json:"note" binding:"max=500"`
}

// UpdateIncomeRequest represents the request payload for updating an income.
type UpdateIncomeRequest struct {
	Source *string          `json:"source" binding:"omitempty,min=1,max=200"`
	Amount *decimal.Decimal `json:"amount"`
	Date   *time.Time       `json:"date"`
	Note   *string          `json:"note" binding:"omitempty,max=500"`
}

// CreateIncome handles recording a new income.
// @Summary     Record an income
// @Description Record a new income event
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIncomeRequest true "Income details"
// @Success     201 {object} models.Income "Income recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	income, err := h.incomeService.CreateIncome(userID, req.Source, req.Amount, date, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"income": income})
}

// GetIncomes handles listing incomes for the authenticated user.
// @Summary     Get incomes
// @Description Get a paginated list of incomes for the authenticated user
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Income] "Paginated incomes"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes [get]
func (h *IncomeHandler) GetIncomes(c *gin.Context) {
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

	result, err := h.incomeService.GetUserIncomes(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetIncome handles retrieving a specific income.
// @Summary     Get income by ID
// @Description Get a specific income by ID
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Success     200 {object} models.Income "Income details"
// @Failure     400 {object} ErrorResponse "Invalid income ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes/{id} [get]
func (h *IncomeHandler) GetIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.GetIncomeByID(userID, incomeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// UpdateIncome handles updating an existing income.
// @Summary     Update income
// @Description Update an existing income
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Income ID"
// @Param       request body UpdateIncomeRequest true "Updated income details"
// @Success     200 {object} models.Income "Updated income"
// @Failure     400 {object} ErrorResponse "Invalid input or income ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.incomeService.UpdateIncome(userID, incomeID, req.Source, req.Amount, req.Date, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// DeleteIncome handles deleting an income.
// @Summary     Delete income
// @Description Delete an income by ID
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Success     200 {object} MessageResponse "Income deleted"
// @Failure     400 {object} ErrorResponse "Invalid income ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncome(userID, incomeID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}
