package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fiscus/internal/errors"
	"fiscus/internal/models"
)

// guardService admits transactions against a budget's ceiling. The
// ceiling check, the optional goal spin, the transaction insert, and
// the spent update execute as one database transaction so that two
// concurrent submissions can never both pass the check against a stale
// total and jointly overshoot the ceiling.
type guardService struct {
	db    *gorm.DB
	spend spendAggregator
	goals GoalServicer
}

// NewBudgetGuard creates a new BudgetGuard.
func NewBudgetGuard(db *gorm.DB, goals GoalServicer) BudgetGuard {
	return &guardService{db: db, goals: goals}
}

// RecordTransaction validates the candidate, then atomically checks the
// ceiling, optionally spins a goal, inserts the transaction, and
// updates the budget's spent total. A rejected candidate leaves no
// trace: no transaction, no goal, no spent change.
func (s *guardService) RecordTransaction(userID, budgetID string, candidate TransactionCandidate) (*models.Transaction, *models.Budget, error) {
	candidate.Merchant = strings.TrimSpace(candidate.Merchant)
	candidate.Category = strings.TrimSpace(candidate.Category)
	candidate.Account = strings.TrimSpace(candidate.Account)

	if candidate.Merchant == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "merchant is required")
	}
	if candidate.Category == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if candidate.Account == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account is required")
	}
	if !candidate.Amount.IsPositive() {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if candidate.Date.IsZero() {
		candidate.Date = time.Now()
	}

	var (
		transaction *models.Transaction
		budget      *models.Budget
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		b, err := lockBudget(tx, budgetID, userID)
		if err != nil {
			return err
		}

		currentSpent, err := s.spend.TotalSpent(tx, budgetID, userID)
		if err != nil {
			return err
		}

		// Boundary is inclusive: a projected total equal to the ceiling
		// is admitted.
		projected := currentSpent.Add(candidate.Amount)
		if projected.GreaterThan(b.Amount) {
			return apperrors.WithDetails(apperrors.ErrBudgetExceeded,
				fmt.Sprintf("budget ceiling of %s would be exceeded: attempted total is %s", b.Amount, projected),
				map[string]interface{}{
					"ceiling":   b.Amount,
					"attempted": projected,
				})
		}

		var goalID *string
		if candidate.TrackAsGoal {
			goal, err := s.goals.Spin(tx, userID, candidate.Merchant, candidate.Amount, candidate.Date, candidate.Note)
			if err != nil {
				return err
			}
			goalID = &goal.ID
		}

		t := &models.Transaction{
			UserID:   userID,
			BudgetID: &b.ID,
			Merchant: candidate.Merchant,
			Category: candidate.Category,
			Account:  candidate.Account,
			Method:   candidate.Method,
			Status:   candidate.Status,
			Amount:   candidate.Amount,
			Date:     candidate.Date,
			Note:     candidate.Note,
			GoalID:   goalID,
		}
		if err := tx.Create(t).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}

		if err := tx.Model(b).Update("spent", projected).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
		b.Spent = projected

		transaction, budget = t, b
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return transaction, budget, nil
}

// lockBudget loads the budget row for the user while holding a row lock
// for the rest of the database transaction. The budget row is the only
// shared resource requiring mutual exclusion across concurrent writers.
func lockBudget(tx *gorm.DB, budgetID, userID string) (*models.Budget, error) {
	q := tx.Where("id = ? AND user_id = ?", budgetID, userID)
	// SQLite serializes writers on its own and rejects FOR UPDATE syntax.
	if tx.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var budget models.Budget
	if err := q.First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return &budget, nil
}
