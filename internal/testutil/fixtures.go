package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fiscus/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBudget creates a budget with a $100.00 ceiling for the given
// month and year. Each call uses a unique name so budgets never collide
// on the period tuple.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string, month, year int) *models.Budget {
	t.Helper()
	return CreateTestBudgetWithAmount(t, db, userID, month, year, decimal.NewFromInt(100))
}

// CreateTestBudgetWithAmount creates a budget with the given ceiling.
func CreateTestBudgetWithAmount(t *testing.T, db *gorm.DB, userID string, month, year int, amount decimal.Decimal) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Budget %d", nextID()),
		Category: "groceries",
		Amount:   amount,
		Spent:    decimal.Zero,
		Month:    month,
		Year:     year,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestTransaction creates a cleared card transaction linked to the
// given budget. Pass nil for budgetID to create an unlinked transaction.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, budgetID *string, amount decimal.Decimal) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		BudgetID: budgetID,
		Merchant: fmt.Sprintf("Test Merchant %d", nextID()),
		Category: "groceries",
		Account:  "checking",
		Method:   models.PaymentMethodCard,
		Status:   models.TransactionStatusCleared,
		Amount:   amount,
		Date:     time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestGoal creates an active goal with a $500.00 target.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: decimal.NewFromInt(500),
		Status:       models.GoalStatusActive,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestIncome creates an income event with the given amount.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID string, amount decimal.Decimal) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID: userID,
		Source: fmt.Sprintf("Test Source %d", nextID()),
		Amount: amount,
		Date:   time.Now(),
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}
