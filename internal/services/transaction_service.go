package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "fiscus/internal/errors"
	"fiscus/internal/models"
	"fiscus/internal/pagination"
)

// transactionService handles transactions outside the guard's record
// path: unlinked creation, reads, and deletion.
type transactionService struct {
	db    *gorm.DB
	spend spendAggregator
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateUnlinkedTransaction creates a transaction that is not linked to
// any budget. No ceiling applies and no goal is spun.
func (s *transactionService) CreateUnlinkedTransaction(userID string, candidate TransactionCandidate) (*models.Transaction, error) {
	candidate.Merchant = strings.TrimSpace(candidate.Merchant)
	candidate.Category = strings.TrimSpace(candidate.Category)
	candidate.Account = strings.TrimSpace(candidate.Account)

	if candidate.Merchant == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "merchant is required")
	}
	if candidate.Category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if candidate.Account == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account is required")
	}
	if !candidate.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if candidate.Date.IsZero() {
		candidate.Date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:   userID,
		Merchant: candidate.Merchant,
		Category: candidate.Category,
		Account:  candidate.Account,
		Method:   candidate.Method,
		Status:   candidate.Status,
		Amount:   candidate.Amount,
		Date:     candidate.Date,
		Note:     candidate.Note,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the
// user's transactions.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Method != nil {
		q = q.Where("method = ?", *f.Method)
	}
	if f.BudgetID != nil {
		q = q.Where("budget_id = ?", *f.BudgetID)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction deletes a transaction. When the transaction is
// linked to a budget, the budget's spent total is recomputed from the
// remaining rows inside the same database transaction, so the spend
// consistency invariant holds across individual deletions. Goals spun
// from the transaction are left in place.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var budget *models.Budget
		if transaction.BudgetID != nil {
			budget, err = lockBudget(tx, *transaction.BudgetID, userID)
			if err != nil {
				return err
			}
		}

		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}

		if budget != nil {
			total, err := s.spend.TotalSpent(tx, budget.ID, userID)
			if err != nil {
				return err
			}
			if err := tx.Model(budget).Update("spent", total).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
			}
		}
		return nil
	})
}
