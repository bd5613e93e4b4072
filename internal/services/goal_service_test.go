package services

import (
	"testing"
	"time"

	"fiscus/internal/models"
	"fiscus/internal/pagination"
	"fiscus/internal/testutil"
	"fiscus/internal/uuid"

	"github.com/shopspring/decimal"
)

func TestCreateGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		targetDate := time.Now().AddDate(1, 0, 0)
		goal, err := svc.CreateGoal(user.ID, "Emergency Fund", decimal.NewFromInt(5000), models.GoalStatusActive, &targetDate, "")
		testutil.AssertNoError(t, err)

		if goal.ID == "" {
			t.Fatal("expected generated goal ID")
		}
		if goal.Status != models.GoalStatusActive {
			t.Errorf("expected active status, got %s", goal.Status)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateGoal(user.ID, "  ", decimal.NewFromInt(5000), models.GoalStatusActive, nil, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateGoal(user.ID, "Bad", decimal.Zero, models.GoalStatusActive, nil, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserGoals(t *testing.T) {
	t.Run("returns_user_goals_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestGoal(t, db, user1.ID)
		testutil.CreateTestGoal(t, db, user1.ID)
		testutil.CreateTestGoal(t, db, user2.ID)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserGoals(user1.ID, page, nil)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 goals, got %d", result.TotalItems)
		}
	})

	t.Run("filter_by_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestGoal(t, db, user.ID) // active
		paused := testutil.CreateTestGoal(t, db, user.ID)
		if err := db.Model(paused).Update("status", models.GoalStatusPaused).Error; err != nil {
			t.Fatalf("failed to pause goal: %v", err)
		}

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		status := models.GoalStatusPaused
		result, err := svc.GetUserGoals(user.ID, page, &status)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Errorf("expected 1 paused goal, got %d", result.TotalItems)
		}
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Run("update_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)

		status := models.GoalStatusCompleted
		_, err := svc.UpdateGoal(user.ID, goal.ID, GoalUpdateFields{Status: &status})
		testutil.AssertNoError(t, err)

		fetched, err := svc.GetGoalByID(user.ID, goal.ID)
		testutil.AssertNoError(t, err)
		if fetched.Status != models.GoalStatusCompleted {
			t.Errorf("expected completed status, got %s", fetched.Status)
		}
	})

	t.Run("invalid_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)

		bad := decimal.NewFromInt(-1)
		_, err := svc.UpdateGoal(user.ID, goal.ID, GoalUpdateFields{TargetAmount: &bad})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		name := "Nope"
		_, err := svc.UpdateGoal(user.ID, uuid.New(), GoalUpdateFields{Name: &name})
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}

func TestDeleteGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)

		err := svc.DeleteGoal(user.ID, goal.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetGoalByID(user.ID, goal.ID)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user1.ID)

		err := svc.DeleteGoal(user2.ID, goal.ID)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}

func TestSpin(t *testing.T) {
	t.Run("creates_completed_goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		goal, err := svc.Spin(db, user.ID, "New Laptop", decimal.NewFromInt(1200), date, "spun")
		testutil.AssertNoError(t, err)

		if goal.Status != models.GoalStatusCompleted {
			t.Errorf("expected completed status, got %s", goal.Status)
		}
		if goal.TargetDate == nil || !goal.TargetDate.Equal(date) {
			t.Errorf("expected target date %s, got %v", date, goal.TargetDate)
		}
		if !goal.TargetAmount.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected target amount 1200, got %s", goal.TargetAmount)
		}
	})
}
