package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodMobile   PaymentMethod = "mobile"
)

// TransactionStatus represents the settlement state of a transaction.
type TransactionStatus string

const (
	TransactionStatusCleared TransactionStatus = "cleared"
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusFlagged TransactionStatus = "flagged"
)

// Transaction represents a single recorded spend event. BudgetID is nil
// for unlinked transactions; the link is immutable once created. GoalID
// is set only when the transaction was spun into a goal at record time.
type Transaction struct {
	Base
	UserID   string            `gorm:"type:uuid;not null;index" json:"user_id"`
	BudgetID *string           `gorm:"type:uuid;index" json:"budget_id,omitempty"`
	Merchant string            `gorm:"not null" json:"merchant"`
	Category string            `gorm:"not null" json:"category"`
	Account  string            `gorm:"not null" json:"account"`
	Method   PaymentMethod     `gorm:"not null" json:"method"`
	Status   TransactionStatus `gorm:"not null" json:"status"`
	Amount   decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date     time.Time         `gorm:"not null" json:"date"`
	Note     string            `json:"note,omitempty"`
	GoalID   *string           `gorm:"type:uuid" json:"goal_id,omitempty"`

	// Relationships
	Budget *Budget `gorm:"foreignKey:BudgetID" json:"budget,omitempty"`
	Goal   *Goal   `gorm:"foreignKey:GoalID" json:"goal,omitempty"`
}
