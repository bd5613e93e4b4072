package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fiscus/internal/errors"
	"fiscus/internal/models"
)

// spendAggregator computes the total amount recorded against a budget
// from its transaction rows. It never reads the budget's cached Spent
// field, so drift in the cache can never compound.
type spendAggregator struct{}

// TotalSpent returns the sum of transaction amounts for the budget,
// zero when the budget has no transactions. Only rows owned by the
// user count toward the total.
func (spendAggregator) TotalSpent(tx *gorm.DB, budgetID, userID string) (decimal.Decimal, error) {
	row := tx.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("budget_id = ? AND user_id = ?", budgetID, userID).
		Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return total, nil
}
