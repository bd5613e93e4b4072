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

// incomeService handles income-related business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome records a new income event.
func (s *incomeService) CreateIncome(userID, source string, amount decimal.Decimal, date time.Time, note string) (*models.Income, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income source is required")
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if date.IsZero() {
		date = time.Now()
	}

	income := &models.Income{
		UserID: userID,
		Source: source,
		Amount: amount,
		Date:   date,
		Note:   note,
	}
	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return income, nil
}

// GetUserIncomes returns a paginated list of the user's incomes.
func (s *incomeService) GetUserIncomes(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	base := s.db.Model(&models.Income{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetIncomeByID returns an income by ID if it belongs to the user.
func (s *incomeService) GetIncomeByID(userID, incomeID string) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncome updates an existing income's fields.
func (s *incomeService) UpdateIncome(userID, incomeID string, source *string, amount *decimal.Decimal, date *time.Time, note *string) (*models.Income, error) {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return nil, err
	}

	if source != nil && strings.TrimSpace(*source) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income source is required")
	}
	if amount != nil && !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	updates := make(map[string]interface{})
	if source != nil {
		updates["source"] = strings.TrimSpace(*source)
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if date != nil {
		updates["date"] = *date
	}
	if note != nil {
		updates["note"] = *note
	}

	if len(updates) > 0 {
		if err := s.db.Model(income).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
	}
	return income, nil
}

// DeleteIncome deletes an income.
func (s *incomeService) DeleteIncome(userID, incomeID string) error {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}
