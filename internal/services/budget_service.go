package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fiscus/internal/errors"
	"fiscus/internal/models"
	"fiscus/internal/pagination"
)

// budgetService handles budget lifecycle management: creation with
// per-period uniqueness, updates, and cascading deletion.
type budgetService struct {
	db    *gorm.DB
	spend spendAggregator
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a new budget for a month/year period. The tuple
// (user, name, month, year) must be unique among the user's budgets.
func (s *budgetService) CreateBudget(userID, name, category string, amount decimal.Decimal, month, year int, note string) (*models.Budget, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name is required")
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "planned amount must be greater than zero")
	}
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year < 1000 || year > 9999 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be a 4-digit year")
	}

	budget := &models.Budget{
		UserID:   userID,
		Name:     name,
		Category: category,
		Amount:   amount,
		Spent:    decimal.Zero,
		Month:    month,
		Year:     year,
		Note:     note,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		taken, err := periodTaken(tx, userID, name, month, year, "")
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrDuplicateBudget
		}
		if err := tx.Create(budget).Error; err != nil {
			// Concurrent creates can slip past the count above; the
			// partial unique index on (user_id, name, month, year)
			// catches the loser.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateBudget
			}
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return budget, nil
}

// GetUserBudgets returns a paginated list of budgets for the user with
// optional month/year filters.
func (s *budgetService) GetUserBudgets(userID string, page pagination.PageRequest, month, year *int) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)
	if month != nil {
		base = base.Where("month = ?", *month)
	}
	if year != nil {
		base = base.Where("year = ?", *year)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Scopes(pagination.Paginate(page)).
		Order("year DESC, month DESC, name").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget updates a budget's descriptive fields. Spent is not an
// accepted field here; it is owned by the budget guard.
func (s *budgetService) UpdateBudget(userID, budgetID string, fields BudgetUpdateFields) (*models.Budget, error) {
	if fields.Name != nil {
		trimmed := strings.TrimSpace(*fields.Name)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name is required")
		}
		fields.Name = &trimmed
	}
	if fields.Amount != nil && !fields.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "planned amount must be greater than zero")
	}
	if fields.Month != nil && (*fields.Month < 1 || *fields.Month > 12) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if fields.Year != nil && (*fields.Year < 1000 || *fields.Year > 9999) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be a 4-digit year")
	}

	var budget *models.Budget
	err := s.db.Transaction(func(tx *gorm.DB) error {
		b, err := lockBudget(tx, budgetID, userID)
		if err != nil {
			return err
		}

		name, month, year := b.Name, b.Month, b.Year
		if fields.Name != nil {
			name = *fields.Name
		}
		if fields.Month != nil {
			month = *fields.Month
		}
		if fields.Year != nil {
			year = *fields.Year
		}
		if name != b.Name || month != b.Month || year != b.Year {
			taken, err := periodTaken(tx, userID, name, month, year, b.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.ErrDuplicateBudget
			}
		}

		updates := make(map[string]interface{})
		if fields.Name != nil {
			updates["name"] = *fields.Name
		}
		if fields.Category != nil {
			updates["category"] = *fields.Category
		}
		if fields.Amount != nil {
			updates["amount"] = *fields.Amount
		}
		if fields.Month != nil {
			updates["month"] = *fields.Month
		}
		if fields.Year != nil {
			updates["year"] = *fields.Year
		}
		if fields.Note != nil {
			updates["note"] = *fields.Note
		}

		if len(updates) > 0 {
			if err := tx.Model(b).Updates(updates).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.ErrDuplicateBudget
				}
				return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
			}
		}

		budget = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// CorrectSpent overrides the cached spent total. This is an explicit
// administrative escape hatch kept off the ordinary update path; it is
// not a substitute for the guard's invariant maintenance.
func (s *budgetService) CorrectSpent(userID, budgetID string, spent decimal.Decimal) (*models.Budget, error) {
	if spent.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "spent must not be negative")
	}

	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(budget).Update("spent", spent).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	budget.Spent = spent
	return budget, nil
}

// DeleteBudget deletes a budget and all of its transactions in one
// database transaction. A failure partway leaves both fully intact.
// Goals spun from those transactions are never deleted.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		budget, err := lockBudget(tx, budgetID, userID)
		if err != nil {
			return err
		}

		if err := tx.Where("budget_id = ?", budget.ID).Delete(&models.Transaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
		if err := tx.Delete(budget).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
		return nil
	})
}

// GetBudgetProgress reports spent vs ceiling for a budget. Spent is
// recomputed from transaction rows rather than read from the cache.
func (s *budgetService) GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	spent, err := s.spend.TotalSpent(s.db, budget.ID, userID)
	if err != nil {
		return nil, err
	}

	remaining := budget.Amount.Sub(spent)
	var percentage float64
	if budget.Amount.IsPositive() {
		percentage, _ = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100)).Float64()
	}

	return &BudgetProgress{
		BudgetID:   budget.ID,
		Ceiling:    budget.Amount,
		Spent:      spent,
		Remaining:  remaining,
		Percentage: percentage,
	}, nil
}

// periodTaken reports whether another budget of the same user already
// covers (name, month, year).
func periodTaken(tx *gorm.DB, userID, name string, month, year int, excludeID string) (bool, error) {
	q := tx.Model(&models.Budget{}).
		Where("user_id = ? AND name = ? AND month = ? AND year = ?", userID, name, month, year)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return count > 0, nil
}
