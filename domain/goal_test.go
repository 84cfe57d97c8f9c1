package domain_test

import (
	"testing"
	"time"

	"github.com/masterplan/backend/domain"
)

func subGoals(statuses ...domain.GoalStatus) []domain.SubGoal {
	out := make([]domain.SubGoal, len(statuses))
	for i, s := range statuses {
		out[i] = domain.SubGoal{ID: "sub", Title: "step", Status: s}
	}
	return out
}

func TestCalculateProgress(t *testing.T) {
	cases := []struct {
		name     string
		statuses []domain.GoalStatus
		want     int
	}{
		{"NoSubGoals", nil, 0},
		{"AllNotStarted", []domain.GoalStatus{domain.StatusNotStarted, domain.StatusNotStarted}, 0},
		{"AllCompleted", []domain.GoalStatus{domain.StatusCompleted, domain.StatusCompleted}, 100},
		{"HalfInProgress", []domain.GoalStatus{domain.StatusInProgress, domain.StatusNotStarted}, 25},
		{"MixedRoundsHalfUp", []domain.GoalStatus{
			domain.StatusCompleted, domain.StatusCompleted,
			domain.StatusInProgress, domain.StatusNotStarted,
		}, 63},
		{"ThirdsRoundDown", []domain.GoalStatus{
			domain.StatusCompleted, domain.StatusNotStarted, domain.StatusNotStarted,
		}, 33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := &domain.Goal{SubGoals: subGoals(tc.statuses...)}
			if got := g.CalculateProgress(); got != tc.want {
				t.Errorf("progress = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRecalculate(t *testing.T) {
	t.Run("DerivesStatusFromSubGoals", func(t *testing.T) {
		g := &domain.Goal{
			Status:   domain.StatusNotStarted,
			SubGoals: subGoals(domain.StatusCompleted, domain.StatusCompleted),
		}
		g.Recalculate()
		if g.Status != domain.StatusCompleted || g.Progress != 100 {
			t.Errorf("got status=%q progress=%d", g.Status, g.Progress)
		}
	})

	t.Run("PartialProgressMeansInProgress", func(t *testing.T) {
		g := &domain.Goal{
			Status:   domain.StatusCompleted,
			SubGoals: subGoals(domain.StatusInProgress, domain.StatusNotStarted),
		}
		g.Recalculate()
		if g.Status != domain.StatusInProgress {
			t.Errorf("status = %q, want in-progress", g.Status)
		}
	})

	t.Run("NoSubGoalsKeepsExplicitStatus", func(t *testing.T) {
		g := &domain.Goal{Status: domain.StatusCompleted}
		g.Recalculate()
		if g.Status != domain.StatusCompleted {
			t.Errorf("status = %q, want the explicit one", g.Status)
		}
		if g.Progress != 0 {
			t.Errorf("progress = %d, want 0", g.Progress)
		}
	})
}

func TestClone(t *testing.T) {
	deadline := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	original := &domain.Goal{
		ID:       "goal-1",
		Title:    "Original",
		Deadline: &deadline,
		SubGoals: []domain.SubGoal{
			{ID: "sub-1", Title: "step", Status: domain.StatusNotStarted, Deadline: &deadline},
		},
	}

	dup := original.Clone()
	dup.Title = "Edited"
	dup.SubGoals[0].Status = domain.StatusCompleted
	*dup.Deadline = deadline.AddDate(0, 1, 0)
	*dup.SubGoals[0].Deadline = deadline.AddDate(0, 1, 0)

	if original.Title != "Original" {
		t.Errorf("clone edit leaked into the original title: %q", original.Title)
	}
	if original.SubGoals[0].Status != domain.StatusNotStarted {
		t.Errorf("clone edit leaked into the original sub-goal: %q", original.SubGoals[0].Status)
	}
	if !original.Deadline.Equal(deadline) {
		t.Errorf("clone edit leaked into the original deadline: %v", original.Deadline)
	}
	if !original.SubGoals[0].Deadline.Equal(deadline) {
		t.Errorf("clone edit leaked into the original sub-goal deadline: %v", original.SubGoals[0].Deadline)
	}
}
