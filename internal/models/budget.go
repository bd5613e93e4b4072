package models

import "github.com/shopspring/decimal"

// Budget represents a planned spending ceiling for a category over a
// specific month and year. Spent is a denormalized cache of the sum of
// linked transaction amounts; only the budget guard mutates it.
type Budget struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_user_period,where:deleted_at IS NULL" json:"user_id"`
	Name     string          `gorm:"not null;uniqueIndex:idx_budgets_user_period" json:"name"`
	Category string          `gorm:"not null" json:"category"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Spent    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"spent"`
	Month    int             `gorm:"not null;uniqueIndex:idx_budgets_user_period" json:"month"`
	Year     int             `gorm:"not null;uniqueIndex:idx_budgets_user_period" json:"year"`
	Note     string          `json:"note,omitempty"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:BudgetID" json:"transactions,omitempty"`
}
