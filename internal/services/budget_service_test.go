package services

import (
	"errors"
	"sync"
	"testing"

	"fiscus/internal/models"
	"fiscus/internal/pagination"
	"fiscus/internal/testutil"
	"fiscus/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestCreateBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, "Groceries", "food", decimal.NewFromInt(500), 6, 2025, "")
		testutil.AssertNoError(t, err)

		if budget.ID == "" {
			t.Fatal("expected generated budget ID")
		}
		if budget.Name != "Groceries" {
			t.Errorf("expected name Groceries, got %s", budget.Name)
		}
		if !budget.Amount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected amount 500, got %s", budget.Amount)
		}
		if !budget.Spent.IsZero() {
			t.Errorf("expected zero spent on creation, got %s", budget.Spent)
		}
	})

	t.Run("trims_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, "  Rent  ", "housing", decimal.NewFromInt(1200), 6, 2025, "")
		testutil.AssertNoError(t, err)

		if budget.Name != "Rent" {
			t.Errorf("expected trimmed name Rent, got %q", budget.Name)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, "   ", "food", decimal.NewFromInt(500), 6, 2025, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, "Groceries", "food", decimal.Zero, 6, 2025, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateBudget(user.ID, "Groceries", "food", decimal.NewFromInt(-10), 6, 2025, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, "Groceries", "food", decimal.NewFromInt(500), 0, 2025, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateBudget(user.ID, "Groceries", "food", decimal.NewFromInt(500), 13, 2025, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, "Groceries", "food", decimal.NewFromInt(500), 6, 2025, "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateBudget(user.ID, "Groceries", "food", decimal.NewFromInt(900), 6, 2025, "")
		testutil.AssertAppError(t, err, "DUPLICATE_BUDGET")
	})

	t.Run("unique_index_backstops_duplicates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)

		// An insert that slips past the service's pre-check still hits
		// the partial unique index on (user_id, name, month, year).
		first := &models.Budget{
			UserID: user.ID, Name: "Groceries", Category: "food",
			Amount: decimal.NewFromInt(500), Spent: decimal.Zero,
			Month: 6, Year: 2025,
		}
		if err := db.Create(first).Error; err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}
		second := &models.Budget{
			UserID: user.ID, Name: "Groceries", Category: "food",
			Amount: decimal.NewFromInt(900), Spent: decimal.Zero,
			Month: 6, Year: 2025,
		}
		err := db.Create(second).Error
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Fatalf("expected duplicated key error, got %v", err)
		}
	})

	t.Run("concurrent_creates_yield_duplicate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		// Whichever racer loses, through the pre-check or through the
		// unique index, the caller sees a duplicate, never a storage
		// failure.
		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.CreateBudget(user.ID, "Groceries", "food", decimal.NewFromInt(500), 6, 2025, "")
			}(i)
		}
		wg.Wait()

		var successes int
		for _, err := range errs {
			if err == nil {
				successes++
				continue
			}
			testutil.AssertAppError(t, err, "DUPLICATE_BUDGET")
		}
		if successes != 1 {
			t.Fatalf("expected exactly one create to succeed, got %d (errs: %v)", successes, errs)
		}
	})

	t.Run("same_name_different_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, "Groceries", "food", decimal.NewFromInt(500), 6, 2025, "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateBudget(user.ID, "Groceries", "food", decimal.NewFromInt(500), 7, 2025, "")
		testutil.AssertNoError(t, err)
	})

	t.Run("same_period_different_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user1.ID, "Groceries", "food", decimal.NewFromInt(500), 6, 2025, "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateBudget(user2.ID, "Groceries", "food", decimal.NewFromInt(500), 6, 2025, "")
		testutil.AssertNoError(t, err)
	})
}

func TestGetUserBudgets(t *testing.T) {
	t.Run("returns_user_budgets_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user1.ID, 6, 2025)
		testutil.CreateTestBudget(t, db, user1.ID, 7, 2025)
		testutil.CreateTestBudget(t, db, user2.ID, 6, 2025)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserBudgets(user1.ID, page, nil, nil)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 budgets, got %d", result.TotalItems)
		}
	})

	t.Run("filter_by_month_and_year", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, 6, 2025)
		testutil.CreateTestBudget(t, db, user.ID, 7, 2025)
		testutil.CreateTestBudget(t, db, user.ID, 6, 2024)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		month, year := 6, 2025
		result, err := svc.GetUserBudgets(user.ID, page, &month, &year)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Errorf("expected 1 budget for 6/2025, got %d", result.TotalItems)
		}
		if len(result.Data) > 0 && (result.Data[0].Month != 6 || result.Data[0].Year != 2025) {
			t.Errorf("expected budget for 6/2025, got %d/%d", result.Data[0].Month, result.Data[0].Year)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestBudget(t, db, user.ID, 6, 2025)
		}

		page := pagination.PageRequest{Page: 1, PageSize: 2}
		result, err := svc.GetUserBudgets(user.ID, page, nil, nil)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 5 {
			t.Errorf("expected 5 total items, got %d", result.TotalItems)
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", result.TotalPages)
		}
		if len(result.Data) != 2 {
			t.Errorf("expected 2 items on page, got %d", len(result.Data))
		}
	})
}

func TestGetBudgetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, 6, 2025)

		found, err := svc.GetBudgetByID(user.ID, budget.ID)
		testutil.AssertNoError(t, err)

		if found.ID != budget.ID {
			t.Errorf("expected budget ID %s, got %s", budget.ID, found.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetBudgetByID(user.ID, uuid.New())
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user1.ID, 6, 2025)

		_, err := svc.GetBudgetByID(user2.ID, budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("update_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, 6, 2025)

		name := "New Name"
		updated, err := svc.UpdateBudget(user.ID, budget.ID, BudgetUpdateFields{Name: &name})
		testutil.AssertNoError(t, err)

		if updated.Name != "New Name" {
			t.Errorf("expected name 'New Name', got %s", updated.Name)
		}
	})

	t.Run("update_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, 6, 2025)

		newAmount := decimal.NewFromInt(750)
		updated, err := svc.UpdateBudget(user.ID, budget.ID, BudgetUpdateFields{Amount: &newAmount})
		testutil.AssertNoError(t, err)

		// Re-fetch to verify DB
		fetched, err := svc.GetBudgetByID(user.ID, updated.ID)
		testutil.AssertNoError(t, err)
		if !fetched.Amount.Equal(decimal.NewFromInt(750)) {
			t.Errorf("expected amount 750, got %s", fetched.Amount)
		}
	})

	t.Run("update_preserves_spent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudgetWithAmount(t, db, user.ID, 6, 2025, decimal.NewFromInt(1000))
		if err := db.Model(budget).Update("spent", decimal.NewFromInt(600)).Error; err != nil {
			t.Fatalf("failed to seed spent: %v", err)
		}

		name := "Renamed"
		_, err := svc.UpdateBudget(user.ID, budget.ID, BudgetUpdateFields{Name: &name})
		testutil.AssertNoError(t, err)

		fetched, err := svc.GetBudgetByID(user.ID, budget.ID)
		testutil.AssertNoError(t, err)
		if !fetched.Spent.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected spent 600 to survive the update, got %s", fetched.Spent)
		}
	})

	t.Run("period_collision", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		existing, err := svc.CreateBudget(user.ID, "Groceries", "food", decimal.NewFromInt(500), 6, 2025, "")
		testutil.AssertNoError(t, err)
		other, err := svc.CreateBudget(user.ID, "Groceries", "food", decimal.NewFromInt(500), 7, 2025, "")
		testutil.AssertNoError(t, err)

		// Moving the second budget onto the first one's period must fail.
		month := existing.Month
		_, err = svc.UpdateBudget(user.ID, other.ID, BudgetUpdateFields{Month: &month})
		testutil.AssertAppError(t, err, "DUPLICATE_BUDGET")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		name := "Nope"
		_, err := svc.UpdateBudget(user.ID, uuid.New(), BudgetUpdateFields{Name: &name})
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestCorrectSpent(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, 6, 2025)

		updated, err := svc.CorrectSpent(user.ID, budget.ID, decimal.NewFromInt(42))
		testutil.AssertNoError(t, err)

		if !updated.Spent.Equal(decimal.NewFromInt(42)) {
			t.Errorf("expected spent 42, got %s", updated.Spent)
		}
	})

	t.Run("negative", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, 6, 2025)

		_, err := svc.CorrectSpent(user.ID, budget.ID, decimal.NewFromInt(-1))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CorrectSpent(user.ID, uuid.New(), decimal.NewFromInt(10))
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestDeleteBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, 6, 2025)

		err := svc.DeleteBudget(user.ID, budget.ID)
		testutil.AssertNoError(t, err)

		// Should not be findable after soft delete
		_, err = svc.GetBudgetByID(user.ID, budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")

		// Verify it's a soft delete (record exists with deleted_at set)
		var count int64
		db.Unscoped().Model(&models.Budget{}).Where("id = ?", budget.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected soft-deleted record to exist, count=%d", count)
		}
	})

	t.Run("cascades_to_transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, 6, 2025)

		testutil.CreateTestTransaction(t, db, user.ID, &budget.ID, decimal.NewFromInt(20))
		testutil.CreateTestTransaction(t, db, user.ID, &budget.ID, decimal.NewFromInt(30))
		unlinked := testutil.CreateTestTransaction(t, db, user.ID, nil, decimal.NewFromInt(15))

		err := svc.DeleteBudget(user.ID, budget.ID)
		testutil.AssertNoError(t, err)

		var linkedCount int64
		db.Model(&models.Transaction{}).Where("budget_id = ?", budget.ID).Count(&linkedCount)
		if linkedCount != 0 {
			t.Errorf("expected linked transactions to be deleted, got %d remaining", linkedCount)
		}

		// Unlinked transactions are untouched.
		var remaining models.Transaction
		if err := db.First(&remaining, "id = ?", unlinked.ID).Error; err != nil {
			t.Errorf("unlinked transaction should survive the delete: %v", err)
		}
	})

	t.Run("spares_goals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		budgetSvc := NewBudgetService(db)
		goalSvc := NewGoalService(db)
		guard := NewBudgetGuard(db, goalSvc)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudgetWithAmount(t, db, user.ID, 6, 2025, decimal.NewFromInt(1000))

		transaction, _, err := guard.RecordTransaction(user.ID, budget.ID, TransactionCandidate{
			Merchant:    "Bike Shop",
			Category:    "leisure",
			Account:     "checking",
			Method:      models.PaymentMethodCard,
			Status:      models.TransactionStatusCleared,
			Amount:      decimal.NewFromInt(300),
			TrackAsGoal: true,
		})
		testutil.AssertNoError(t, err)
		if transaction.GoalID == nil {
			t.Fatal("expected a goal to be spun from the transaction")
		}

		err = budgetSvc.DeleteBudget(user.ID, budget.ID)
		testutil.AssertNoError(t, err)

		// The spun goal outlives the budget and its transactions.
		goal, err := goalSvc.GetGoalByID(user.ID, *transaction.GoalID)
		testutil.AssertNoError(t, err)
		if goal.Status != models.GoalStatusCompleted {
			t.Errorf("expected completed goal, got %s", goal.Status)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteBudget(user.ID, uuid.New())
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user1.ID, 6, 2025)

		err := svc.DeleteBudget(user2.ID, budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestGetBudgetProgress(t *testing.T) {
	t.Run("no_spending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, 6, 2025) // $100

		progress, err := svc.GetBudgetProgress(user.ID, budget.ID)
		testutil.AssertNoError(t, err)

		if progress.BudgetID != budget.ID {
			t.Errorf("expected budget ID %s, got %s", budget.ID, progress.BudgetID)
		}
		if !progress.Ceiling.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected ceiling 100, got %s", progress.Ceiling)
		}
		if !progress.Spent.IsZero() {
			t.Errorf("expected spent 0, got %s", progress.Spent)
		}
		if !progress.Remaining.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected remaining 100, got %s", progress.Remaining)
		}
		if progress.Percentage != 0 {
			t.Errorf("expected percentage 0, got %f", progress.Percentage)
		}
	})

	t.Run("partial_spending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, 6, 2025) // $100

		testutil.CreateTestTransaction(t, db, user.ID, &budget.ID, decimal.NewFromInt(30))
		testutil.CreateTestTransaction(t, db, user.ID, &budget.ID, decimal.NewFromInt(20))

		progress, err := svc.GetBudgetProgress(user.ID, budget.ID)
		testutil.AssertNoError(t, err)

		if !progress.Spent.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected spent 50, got %s", progress.Spent)
		}
		if !progress.Remaining.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected remaining 50, got %s", progress.Remaining)
		}
		if progress.Percentage != 50.0 {
			t.Errorf("expected percentage 50.0, got %f", progress.Percentage)
		}
	})

	t.Run("ignores_other_budgets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, 6, 2025)
		other := testutil.CreateTestBudget(t, db, user.ID, 7, 2025)

		testutil.CreateTestTransaction(t, db, user.ID, &other.ID, decimal.NewFromInt(40))
		testutil.CreateTestTransaction(t, db, user.ID, nil, decimal.NewFromInt(25))

		progress, err := svc.GetBudgetProgress(user.ID, budget.ID)
		testutil.AssertNoError(t, err)

		if !progress.Spent.IsZero() {
			t.Errorf("expected spent 0, got %s", progress.Spent)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetBudgetProgress(user.ID, uuid.New())
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}
