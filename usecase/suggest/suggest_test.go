package suggest_test

import (
	"context"
	"testing"
	"time"

	"github.com/masterplan/backend/domain"
	"github.com/masterplan/backend/pkg/clock"
	goalUC "github.com/masterplan/backend/usecase/goal"
	suggestUC "github.com/masterplan/backend/usecase/suggest"
)

const testUserID = "user-1"

type recordingCreator struct {
	inputs []goalUC.GoalInput
}

func (c *recordingCreator) AddGoal(_ context.Context, _ string, input goalUC.GoalInput) (*domain.Goal, error) {
	c.inputs = append(c.inputs, input)
	return &domain.Goal{ID: "created", Title: input.Title, Status: input.Status}, nil
}

func TestListSuggestions(t *testing.T) {
	uc := suggestUC.New(&recordingCreator{}, clock.NewFake(time.Time{}), nil)

	suggestions := uc.List(context.Background())
	if len(suggestions) != 4 {
		t.Fatalf("catalog size = %d, want 4", len(suggestions))
	}
	for i, s := range suggestions {
		if s.Index != i {
			t.Errorf("suggestion %d carries index %d", i, s.Index)
		}
		if s.Title == "" || len(s.SubGoals) == 0 {
			t.Errorf("suggestion %d is incomplete: %+v", i, s)
		}
	}
}

func TestAdoptSuggestion(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesNotStartedGoal", func(t *testing.T) {
		creator := &recordingCreator{}
		uc := suggestUC.New(creator, clock.NewFake(time.Time{}), nil)

		created, err := uc.Adopt(ctx, testUserID, 1)
		if err != nil {
			t.Fatalf("Adopt failed: %v", err)
		}
		if created.Status != domain.StatusNotStarted {
			t.Errorf("status = %q, want %q", created.Status, domain.StatusNotStarted)
		}
		if len(creator.inputs) != 1 {
			t.Fatalf("creator called %d times, want 1", len(creator.inputs))
		}
		input := creator.inputs[0]
		if input.Title != "Prepare for Upcoming Exams" {
			t.Errorf("title = %q, want the second catalog entry", input.Title)
		}
		if len(input.SubGoals) != 4 {
			t.Errorf("sub-goals = %d, want 4", len(input.SubGoals))
		}
		for _, sg := range input.SubGoals {
			if sg.Status != domain.StatusNotStarted {
				t.Errorf("sub-goal %q status = %q, want not-started", sg.Title, sg.Status)
			}
		}
	})

	t.Run("OutOfRangeIndexFails", func(t *testing.T) {
		uc := suggestUC.New(&recordingCreator{}, clock.NewFake(time.Time{}), nil)
		if _, err := uc.Adopt(ctx, testUserID, 99); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			t.Errorf("expected NOT_FOUND error, got %v", err)
		}
		if _, err := uc.Adopt(ctx, testUserID, -1); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			t.Errorf("expected NOT_FOUND error, got %v", err)
		}
	})
}

func TestDailyQuote(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	uc := suggestUC.New(&recordingCreator{}, clk, nil)

	t.Run("StableWithinADay", func(t *testing.T) {
		first := uc.DailyQuote()
		clk.Advance(6 * time.Hour)
		second := uc.DailyQuote()
		if first != second {
			t.Errorf("quote changed within a day: %+v vs %+v", first, second)
		}
	})

	t.Run("RotatesAcrossDays", func(t *testing.T) {
		first := uc.DailyQuote()
		clk.Advance(24 * time.Hour)
		second := uc.DailyQuote()
		if first == second {
			t.Error("quote did not rotate on the next day")
		}
	})
}
