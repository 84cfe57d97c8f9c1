package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/masterplan/backend/domain"
)

// demoGoals builds the starter collection installed for users that have never
// saved one. Derived fields are recomputed rather than hardcoded so the seed
// honors the same invariants as user data.
func demoGoals(now time.Time) []domain.Goal {
	courseDeadline := now.AddDate(0, 0, 14)
	projectDeadline := now.AddDate(0, 0, 21)

	goals := []domain.Goal{
		{
			ID:          uuid.NewString(),
			Title:       "Complete Data Structures Course",
			Description: "Finish all modules in the online data structures course",
			Status:      domain.StatusInProgress,
			Deadline:    &courseDeadline,
			CreatedAt:   now.AddDate(0, 0, -5),
			UpdatedAt:   now,
			Streak:      3,
			SubGoals: []domain.SubGoal{
				{ID: uuid.NewString(), Title: "Arrays and Linked Lists", Status: domain.StatusCompleted},
				{ID: uuid.NewString(), Title: "Stacks and Queues", Status: domain.StatusCompleted},
				{ID: uuid.NewString(), Title: "Trees and Graphs", Status: domain.StatusInProgress},
				{ID: uuid.NewString(), Title: "Heap and Priority Queues", Status: domain.StatusNotStarted},
			},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Submit Term Project",
			Description: "Complete and submit the final term project for CS401",
			Status:      domain.StatusNotStarted,
			Deadline:    &projectDeadline,
			CreatedAt:   now.AddDate(0, 0, -2),
			UpdatedAt:   now,
			SubGoals: []domain.SubGoal{
				{ID: uuid.NewString(), Title: "Research and outline", Status: domain.StatusNotStarted},
				{ID: uuid.NewString(), Title: "Implement core features", Status: domain.StatusNotStarted},
				{ID: uuid.NewString(), Title: "Write documentation", Status: domain.StatusNotStarted},
				{ID: uuid.NewString(), Title: "Prepare presentation", Status: domain.StatusNotStarted},
			},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Daily Study Routine",
			Description: "Maintain a consistent daily study schedule",
			Status:      domain.StatusInProgress,
			CreatedAt:   now.AddDate(0, 0, -10),
			UpdatedAt:   now,
			Streak:      7,
			SubGoals: []domain.SubGoal{
				{ID: uuid.NewString(), Title: "Morning review (30 mins)", Status: domain.StatusInProgress},
				{ID: uuid.NewString(), Title: "Afternoon deep work (2 hrs)", Status: domain.StatusInProgress},
				{ID: uuid.NewString(), Title: "Evening summary (30 mins)", Status: domain.StatusInProgress},
			},
		},
	}

	for i := range goals {
		g := &goals[i]
		g.Recalculate()
		if g.Streak > 0 {
			activity := now
			g.LastActivityAt = &activity
		}
	}
	return goals
}
