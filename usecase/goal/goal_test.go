package goal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/masterplan/backend/domain"
	"github.com/masterplan/backend/pkg/clock"
	goalUC "github.com/masterplan/backend/usecase/goal"
)

const testUserID = "user-1"

// fakeGoalRepo keeps collections in a map, mirroring the blob store contract:
// a missing collection loads as (nil, nil).
type fakeGoalRepo struct {
	collections map[string][]domain.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{collections: make(map[string][]domain.Goal)}
}

func (r *fakeGoalRepo) LoadCollection(_ context.Context, userID string) ([]domain.Goal, error) {
	goals, ok := r.collections[userID]
	if !ok {
		return nil, nil
	}
	out := make([]domain.Goal, len(goals))
	for i := range goals {
		out[i] = *goals[i].Clone()
	}
	return out, nil
}

func (r *fakeGoalRepo) SaveCollection(_ context.Context, userID string, goals []domain.Goal) error {
	stored := make([]domain.Goal, len(goals))
	for i := range goals {
		stored[i] = *goals[i].Clone()
	}
	r.collections[userID] = stored
	return nil
}

func (r *fakeGoalRepo) DeleteCollection(_ context.Context, userID string) error {
	delete(r.collections, userID)
	return nil
}

func (r *fakeGoalRepo) UserIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.collections))
	for id := range r.collections {
		ids = append(ids, id)
	}
	return ids, nil
}

func newTestUseCase(t *testing.T, clk clock.Clock) (*goalUC.UseCase, *fakeGoalRepo) {
	t.Helper()
	repo := newFakeGoalRepo()
	return goalUC.New(repo, clk, nil, goalUC.Config{}), repo
}

func TestAddGoal(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("CreatesGoalWithDefaults", func(t *testing.T) {
		uc, _ := newTestUseCase(t, clock.NewFake(start))

		created, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{Title: "Learn Go"})
		if err != nil {
			t.Fatalf("AddGoal failed: %v", err)
		}
		if created.ID == "" {
			t.Error("expected a generated id")
		}
		if created.Status != domain.StatusNotStarted {
			t.Errorf("status = %q, want %q", created.Status, domain.StatusNotStarted)
		}
		if created.Progress != 0 {
			t.Errorf("progress = %d, want 0", created.Progress)
		}
		if !created.CreatedAt.Equal(start) {
			t.Errorf("created_at = %v, want %v", created.CreatedAt, start)
		}
		if created.Streak != 1 {
			t.Errorf("streak = %d, want 1", created.Streak)
		}
	})

	t.Run("ProgressStaysZeroUntilFirstRecalculation", func(t *testing.T) {
		uc, _ := newTestUseCase(t, clock.NewFake(start))

		created, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{
			Title: "Prepped goal",
			SubGoals: []goalUC.SubGoalInput{
				{Title: "done", Status: domain.StatusCompleted},
				{Title: "done too", Status: domain.StatusCompleted},
			},
		})
		if err != nil {
			t.Fatalf("AddGoal failed: %v", err)
		}
		if created.Progress != 0 {
			t.Errorf("progress on creation = %d, want 0", created.Progress)
		}
	})

	t.Run("RejectsEmptyTitle", func(t *testing.T) {
		uc, _ := newTestUseCase(t, clock.NewFake(start))

		if _, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
			t.Errorf("expected INVALID error, got %v", err)
		}
	})
}

func TestProgressDerivation(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	uc, _ := newTestUseCase(t, clk)

	created, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{
		Title: "Ship feature",
		SubGoals: []goalUC.SubGoalInput{
			{Title: "design", Status: domain.StatusCompleted},
			{Title: "implement", Status: domain.StatusCompleted},
			{Title: "review", Status: domain.StatusInProgress},
			{Title: "release", Status: domain.StatusNotStarted},
		},
	})
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	t.Run("WeightedRounding", func(t *testing.T) {
		// (2 + 0.5) / 4 = 62.5, rounded half away from zero.
		updated, err := uc.AddSubGoal(ctx, testUserID, created.ID, goalUC.SubGoalInput{Title: "announce"})
		if err != nil {
			t.Fatalf("AddSubGoal failed: %v", err)
		}
		// (2 + 0.5) / 5 = 50 now; remove it again to check the 4-element case.
		if _, err := uc.DeleteSubGoal(ctx, testUserID, created.ID, updated.SubGoals[4].ID); err != nil {
			t.Fatalf("DeleteSubGoal failed: %v", err)
		}
		goal, err := uc.GetGoal(ctx, testUserID, created.ID)
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		if goal.Progress != 63 {
			t.Errorf("progress = %d, want 63", goal.Progress)
		}
		if goal.Status != domain.StatusInProgress {
			t.Errorf("status = %q, want %q", goal.Status, domain.StatusInProgress)
		}
	})

	t.Run("AllCompletedReachesHundred", func(t *testing.T) {
		goal, err := uc.GetGoal(ctx, testUserID, created.ID)
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		completed := domain.StatusCompleted
		for _, sg := range goal.SubGoals {
			if _, err := uc.UpdateSubGoal(ctx, testUserID, created.ID, sg.ID, goalUC.SubGoalUpdate{Status: &completed}); err != nil {
				t.Fatalf("UpdateSubGoal failed: %v", err)
			}
		}
		goal, err = uc.GetGoal(ctx, testUserID, created.ID)
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		if goal.Progress != 100 {
			t.Errorf("progress = %d, want 100", goal.Progress)
		}
		if goal.Status != domain.StatusCompleted {
			t.Errorf("status = %q, want %q", goal.Status, domain.StatusCompleted)
		}
	})

	t.Run("UpdateSubGoalIsIdempotent", func(t *testing.T) {
		goal, err := uc.GetGoal(ctx, testUserID, created.ID)
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		completed := domain.StatusCompleted
		first, err := uc.UpdateSubGoal(ctx, testUserID, created.ID, goal.SubGoals[0].ID, goalUC.SubGoalUpdate{Status: &completed})
		if err != nil {
			t.Fatalf("UpdateSubGoal failed: %v", err)
		}
		second, err := uc.UpdateSubGoal(ctx, testUserID, created.ID, goal.SubGoals[0].ID, goalUC.SubGoalUpdate{Status: &completed})
		if err != nil {
			t.Fatalf("repeated UpdateSubGoal failed: %v", err)
		}
		if first.Progress != second.Progress || first.Status != second.Status {
			t.Errorf("repeated update changed derived fields: %d/%s vs %d/%s",
				first.Progress, first.Status, second.Progress, second.Status)
		}
	})
}

func TestGoalWithoutSubGoals(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, clock.NewFake(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))

	created, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{
		Title:  "Read a book",
		Status: domain.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	t.Run("KeepsExplicitStatus", func(t *testing.T) {
		inProgress := domain.StatusInProgress
		updated, err := uc.UpdateGoal(ctx, testUserID, created.ID, goalUC.GoalUpdate{Status: &inProgress})
		if err != nil {
			t.Fatalf("UpdateGoal failed: %v", err)
		}
		if updated.Status != domain.StatusInProgress {
			t.Errorf("status = %q, want %q", updated.Status, domain.StatusInProgress)
		}
		if updated.Progress != 0 {
			t.Errorf("progress = %d, want 0", updated.Progress)
		}
	})

	t.Run("DerivationTakesOverOnceSubGoalsExist", func(t *testing.T) {
		completed := domain.StatusCompleted
		updated, err := uc.UpdateGoal(ctx, testUserID, created.ID, goalUC.GoalUpdate{
			Status:   &completed,
			SubGoals: []goalUC.SubGoalInput{{Title: "chapter one"}},
		})
		if err != nil {
			t.Fatalf("UpdateGoal failed: %v", err)
		}
		if updated.Status != domain.StatusNotStarted {
			t.Errorf("status = %q, want %q", updated.Status, domain.StatusNotStarted)
		}
	})
}

func TestDeleteGoal(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, clock.NewFake(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))

	created, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{
		Title:    "Doomed goal",
		SubGoals: []goalUC.SubGoalInput{{Title: "step"}},
	})
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	t.Run("RemovesGoalAndSubGoals", func(t *testing.T) {
		if err := uc.DeleteGoal(ctx, testUserID, created.ID); err != nil {
			t.Fatalf("DeleteGoal failed: %v", err)
		}
		if _, err := uc.GetGoal(ctx, testUserID, created.ID); !errors.Is(err, domain.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("AbsentGoalIsNoOp", func(t *testing.T) {
		if err := uc.DeleteGoal(ctx, testUserID, "no-such-goal"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
}

func TestUpdateGoal(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, clock.NewFake(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))

	deadline := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	created, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{Title: "Original", Deadline: &deadline})
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	t.Run("MergesPartialEdit", func(t *testing.T) {
		title := "Renamed"
		updated, err := uc.UpdateGoal(ctx, testUserID, created.ID, goalUC.GoalUpdate{Title: &title})
		if err != nil {
			t.Fatalf("UpdateGoal failed: %v", err)
		}
		if updated.Title != "Renamed" {
			t.Errorf("title = %q, want %q", updated.Title, "Renamed")
		}
		if updated.Deadline == nil || !updated.Deadline.Equal(deadline) {
			t.Errorf("deadline changed unexpectedly: %v", updated.Deadline)
		}
	})

	t.Run("RemovesDeadline", func(t *testing.T) {
		updated, err := uc.UpdateGoal(ctx, testUserID, created.ID, goalUC.GoalUpdate{RemoveDeadline: true})
		if err != nil {
			t.Fatalf("UpdateGoal failed: %v", err)
		}
		if updated.Deadline != nil {
			t.Errorf("deadline = %v, want nil", updated.Deadline)
		}
	})

	t.Run("MissingGoalFails", func(t *testing.T) {
		if _, err := uc.UpdateGoal(ctx, testUserID, "no-such-goal", goalUC.GoalUpdate{}); !errors.Is(err, domain.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})
}

func TestSubGoalNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, clock.NewFake(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))

	created, err := uc.AddGoal(ctx, testUserID, goalUC.GoalInput{Title: "Goal"})
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	if _, err := uc.UpdateSubGoal(ctx, testUserID, created.ID, "missing", goalUC.SubGoalUpdate{}); !errors.Is(err, domain.ErrSubGoalNotFound) {
		t.Errorf("update: expected ErrSubGoalNotFound, got %v", err)
	}
	if _, err := uc.DeleteSubGoal(ctx, testUserID, created.ID, "missing"); !errors.Is(err, domain.ErrSubGoalNotFound) {
		t.Errorf("delete: expected ErrSubGoalNotFound, got %v", err)
	}
}

func TestDemoSeed(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	t.Run("SeedsFirstLoad", func(t *testing.T) {
		repo := newFakeGoalRepo()
		uc := goalUC.New(repo, clk, nil, goalUC.Config{SeedDemoData: true})

		goals, err := uc.ListGoals(ctx, testUserID)
		if err != nil {
			t.Fatalf("ListGoals failed: %v", err)
		}
		if len(goals) != 3 {
			t.Fatalf("seeded %d goals, want 3", len(goals))
		}
		if _, ok := repo.collections[testUserID]; !ok {
			t.Error("seed was not persisted")
		}
	})

	t.Run("DisabledSeedYieldsEmptyCollection", func(t *testing.T) {
		uc, _ := newTestUseCase(t, clk)
		goals, err := uc.ListGoals(ctx, testUserID)
		if err != nil {
			t.Fatalf("ListGoals failed: %v", err)
		}
		if len(goals) != 0 {
			t.Errorf("expected empty collection, got %d goals", len(goals))
		}
	})

	t.Run("EmptySavedCollectionIsNotReseeded", func(t *testing.T) {
		repo := newFakeGoalRepo()
		uc := goalUC.New(repo, clk, nil, goalUC.Config{SeedDemoData: true})

		goals, err := uc.ListGoals(ctx, testUserID)
		if err != nil {
			t.Fatalf("ListGoals failed: %v", err)
		}
		for _, g := range goals {
			if err := uc.DeleteGoal(ctx, testUserID, g.ID); err != nil {
				t.Fatalf("DeleteGoal failed: %v", err)
			}
		}
		goals, err = uc.ListGoals(ctx, testUserID)
		if err != nil {
			t.Fatalf("ListGoals failed: %v", err)
		}
		if len(goals) != 0 {
			t.Errorf("emptied collection was reseeded to %d goals", len(goals))
		}
	})
}
