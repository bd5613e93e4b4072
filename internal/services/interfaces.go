package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fiscus/internal/models"
	"fiscus/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// BudgetUpdateFields holds the optional fields accepted by UpdateBudget.
// Spent is deliberately absent: it is derived state owned by the budget
// guard and may only be overridden through CorrectSpent.
type BudgetUpdateFields struct {
	Name     *string
	Category *string
	Amount   *decimal.Decimal
	Month    *int
	Year     *int
	Note     *string
}

// BudgetServicer defines the contract for budget lifecycle management.
type BudgetServicer interface {
	CreateBudget(userID, name, category string, amount decimal.Decimal, month, year int, note string) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest, month, year *int) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, fields BudgetUpdateFields) (*models.Budget, error)
	CorrectSpent(userID, budgetID string, spent decimal.Decimal) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
	GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error)
}

// BudgetProgress contains spending vs ceiling data for a budget.
type BudgetProgress struct {
	BudgetID   string          `json:"budget_id"`
	Ceiling    decimal.Decimal `json:"ceiling"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
}

// TransactionCandidate carries the fields of a proposed transaction
// before it has been admitted by the budget guard.
type TransactionCandidate struct {
	Merchant    string
	Category    string
	Account     string
	Method      models.PaymentMethod
	Status      models.TransactionStatus
	Amount      decimal.Decimal
	Date        time.Time
	Note        string
	TrackAsGoal bool
}

// BudgetGuard is the single write path for transactions linked to a
// budget and the only component permitted to mutate Budget.Spent.
type BudgetGuard interface {
	RecordTransaction(userID, budgetID string, candidate TransactionCandidate) (*models.Transaction, *models.Budget, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	Status    *models.TransactionStatus
	Method    *models.PaymentMethod
	BudgetID  *string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// TransactionServicer defines the contract for transactions outside the
// guard's record path: unlinked creation, reads, and deletion.
type TransactionServicer interface {
	CreateUnlinkedTransaction(userID string, candidate TransactionCandidate) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// GoalUpdateFields holds the optional fields accepted by UpdateGoal.
type GoalUpdateFields struct {
	Name         *string
	TargetAmount *decimal.Decimal
	Status       *models.GoalStatus
	TargetDate   *time.Time
	Note         *string
}

// GoalServicer defines the contract for goal management. Spin is the
// side-effect path used by the budget guard; it participates in the
// guard's database transaction and is never routed to end users.
type GoalServicer interface {
	CreateGoal(userID, name string, targetAmount decimal.Decimal, status models.GoalStatus, targetDate *time.Time, note string) (*models.Goal, error)
	GetUserGoals(userID string, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(userID, goalID string) (*models.Goal, error)
	UpdateGoal(userID, goalID string, fields GoalUpdateFields) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
	Spin(tx *gorm.DB, userID, name string, amount decimal.Decimal, date time.Time, note string) (*models.Goal, error)
}

// IncomeServicer defines the contract for income management.
type IncomeServicer interface {
	CreateIncome(userID, source string, amount decimal.Decimal, date time.Time, note string) (*models.Income, error)
	GetUserIncomes(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	GetIncomeByID(userID, incomeID string) (*models.Income, error)
	UpdateIncome(userID, incomeID string, source *string, amount *decimal.Decimal, date *time.Time, note *string) (*models.Income, error)
	DeleteIncome(userID, incomeID string) error
}
