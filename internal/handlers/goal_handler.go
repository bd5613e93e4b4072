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
)

// GoalHandler handles goal-related requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Name         string            `json:"name" binding:"required,min=1,max=100"`
	TargetAmount decimal.Decimal   `json:"target_amount" binding:"required"`
	Status       models.GoalStatus `json:"status" binding:"required,goal_status"`
	TargetDate   *time.Time        `json:"target_date"`
	Note         string            `json:"note" binding:"max=500"`
}

// UpdateGoalRequest represents the request payload for updating a goal.
type UpdateGoalRequest struct {
	Name         *string            `json:"name" binding:"omitempty,min=1,max=100"`
	TargetAmount *decimal.Decimal   `json:"target_amount"`
	Status       *models.GoalStatus `json:"status" binding:"omitempty,goal_status"`
	TargetDate   *time.Time         `json:"target_date"`
	Note         *string            `json:"note" binding:"omitempty,max=500"`
}

// CreateGoal handles the creation of a new goal.
// @Summary     Create a goal
// @Description Create a new savings goal with a user-chosen status
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} models.Goal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(userID, req.Name, req.TargetAmount, req.Status, req.TargetDate, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals handles listing goals for the authenticated user.
// @Summary     Get goals
// @Description Get a paginated list of goals for the authenticated user
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       status    query string false "Filter by status (planning/active/completed/paused)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Goal] "Paginated goals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
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

	var status *models.GoalStatus
	if v := c.Query("status"); v != "" {
		s := models.GoalStatus(v)
		switch s {
		case models.GoalStatusPlanning, models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusPaused:
			status = &s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be planning, active, completed, or paused"))
			return
		}
	}

	result, err := h.goalService.GetUserGoals(userID, page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGoal handles retrieving a specific goal.
// @Summary     Get goal by ID
// @Description Get a specific goal by ID
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} models.Goal "Goal details"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoalByID(userID, goalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// UpdateGoal handles updating an existing goal.
// @Summary     Update goal
// @Description Update an existing goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Goal ID"
// @Param       request body UpdateGoalRequest true "Updated goal details"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input or goal ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateGoal(userID, goalID, services.GoalUpdateFields{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Status:       req.Status,
		TargetDate:   req.TargetDate,
		Note:         req.Note,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal handles deleting a goal.
// @Summary     Delete goal
// @Description Delete a goal by ID
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
