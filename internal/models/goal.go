package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusPlanning  GoalStatus = "planning"
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// Goal represents a savings or target objective. Goals created by the
// goal spinner have their status fixed to completed and their target
// date fixed to the triggering transaction's date. Goals are never
// deleted implicitly.
type Goal struct {
	Base
	UserID       string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string          `gorm:"not null" json:"name"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"target_amount"`
	Status       GoalStatus      `gorm:"not null" json:"status"`
	TargetDate   *time.Time      `json:"target_date,omitempty"`
	Note         string          `json:"note,omitempty"`
}
