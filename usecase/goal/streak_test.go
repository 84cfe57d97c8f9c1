package goal_test

import (
	"context"
	"testing"
	"time"

	"github.com/masterplan/backend/pkg/clock"
	goalUC "github.com/masterplan/backend/usecase/goal"
)

func TestStreakTracking(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	uc, _ := newTestUseCase(t, clk)

	created, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{Title: "Daily habit"})
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}
	if created.Streak != 1 {
		t.Fatalf("streak after creation = %d, want 1", created.Streak)
	}

	t.Run("SameDayActivityCountsOnce", func(t *testing.T) {
		clk.Advance(2 * time.Hour)
		goal, err := uc.AddSubGoal(ctx, testUserID, created.ID, goalUC.SubGoalInput{Title: "step"})
		if err != nil {
			t.Fatalf("AddSubGoal failed: %v", err)
		}
		if goal.Streak != 1 {
			t.Errorf("streak = %d, want 1", goal.Streak)
		}
	})

	t.Run("ConsecutiveDayExtends", func(t *testing.T) {
		clk.Advance(24 * time.Hour)
		goal, err := uc.AddSubGoal(ctx, testUserID, created.ID, goalUC.SubGoalInput{Title: "step two"})
		if err != nil {
			t.Fatalf("AddSubGoal failed: %v", err)
		}
		if goal.Streak != 2 {
			t.Errorf("streak = %d, want 2", goal.Streak)
		}
	})

	t.Run("GapResetsToOne", func(t *testing.T) {
		clk.Advance(3 * 24 * time.Hour)
		goal, err := uc.AddSubGoal(ctx, testUserID, created.ID, goalUC.SubGoalInput{Title: "step three"})
		if err != nil {
			t.Fatalf("AddSubGoal failed: %v", err)
		}
		if goal.Streak != 1 {
			t.Errorf("streak = %d, want 1", goal.Streak)
		}
	})
}

func TestResetIdleStreaks(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	uc, _ := newTestUseCase(t, clk)

	stale, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{Title: "Abandoned"})
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	// Two days later the first goal has seen nothing; a second goal is
	// touched today.
	clk.Advance(2 * 24 * time.Hour)
	active, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{Title: "Fresh"})
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	if err := uc.ResetIdleStreaks(ctx); err != nil {
		t.Fatalf("ResetIdleStreaks failed: %v", err)
	}

	goal, err := uc.GetGoal(ctx, testUserID, stale.ID)
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}
	if goal.Streak != 0 {
		t.Errorf("stale streak = %d, want 0", goal.Streak)
	}

	goal, err = uc.GetGoal(ctx, testUserID, active.ID)
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}
	if goal.Streak != 1 {
		t.Errorf("active streak = %d, want 1", goal.Streak)
	}
}

func TestResetIdleStreaksKeepsYesterday(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	uc, _ := newTestUseCase(t, clk)

	created, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{Title: "Yesterday's work"})
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	// The sweep runs the next morning; yesterday's activity still counts.
	clk.Set(time.Date(2025, 3, 11, 0, 5, 0, 0, time.UTC))
	if err := uc.ResetIdleStreaks(ctx); err != nil {
		t.Fatalf("ResetIdleStreaks failed: %v", err)
	}

	goal, err := uc.GetGoal(ctx, testUserID, created.ID)
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}
	if goal.Streak != 1 {
		t.Errorf("streak = %d, want 1", goal.Streak)
	}
}
