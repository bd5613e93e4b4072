package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income represents a recorded income event. Incomes carry no
// cross-entity invariant and are managed through plain CRUD.
type Income struct {
	Base
	UserID string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Source string          `gorm:"not null" json:"source"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date   time.Time       `gorm:"not null" json:"date"`
	Note   string          `json:"note,omitempty"`
}
