package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fiscus/internal/errors"
	"fiscus/internal/models"
	"fiscus/internal/pagination"
)

// goalService handles goal management and the spinner side-effect path.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a goal with a user-chosen status.
func (s *goalService) CreateGoal(userID, name string, targetAmount decimal.Decimal, status models.GoalStatus, targetDate *time.Time, note string) (*models.Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if !targetAmount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	goal := &models.Goal{
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		Status:       status,
		TargetDate:   targetDate,
		Note:         note,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return goal, nil
}

// GetUserGoals returns a paginated list of goals with an optional
// status filter.
func (s *goalService) GetUserGoals(userID string, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[models.Goal], error) {
	page.Defaults()

	base := s.db.Model(&models.Goal{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := base.Scopes(pagination.Paginate(page)).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID returns a goal by ID if it belongs to the user.
func (s *goalService) GetGoalByID(userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal updates an existing goal's fields.
func (s *goalService) UpdateGoal(userID, goalID string, fields GoalUpdateFields) (*models.Goal, error) {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if fields.TargetAmount != nil && !fields.TargetAmount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	updates := make(map[string]interface{})
	if fields.Name != nil {
		updates["name"] = strings.TrimSpace(*fields.Name)
	}
	if fields.TargetAmount != nil {
		updates["target_amount"] = *fields.TargetAmount
	}
	if fields.Status != nil {
		updates["status"] = *fields.Status
	}
	if fields.TargetDate != nil {
		updates["target_date"] = *fields.TargetDate
	}
	if fields.Note != nil {
		updates["note"] = *fields.Note
	}

	if len(updates) > 0 {
		if err := s.db.Model(goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
	}
	return goal, nil
}

// DeleteGoal deletes a goal. Goals are only ever deleted through this
// explicit path, never as a side effect of budget or transaction
// deletion.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// Spin creates a completed goal mirroring a transaction that was
// flagged for goal tracking. It runs inside the budget guard's database
// transaction; the caller has already validated the inputs.
func (s *goalService) Spin(tx *gorm.DB, userID, name string, amount decimal.Decimal, date time.Time, note string) (*models.Goal, error) {
	goal := &models.Goal{
		UserID:       userID,
		Name:         name,
		TargetAmount: amount,
		Status:       models.GoalStatusCompleted,
		TargetDate:   &date,
		Note:         note,
	}
	if err := tx.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return goal, nil
}
