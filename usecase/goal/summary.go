package goal

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/masterplan/backend/domain"
)

// Summary aggregates the dashboard numbers for one user's collection.
type Summary struct {
	TotalGoals      int             `json:"total_goals"`
	CompletedGoals  int             `json:"completed_goals"`
	InProgressGoals int             `json:"in_progress_goals"`
	OverallProgress int             `json:"overall_progress"`
	CompletionRate  int             `json:"completion_rate"`
	LongestStreak   int             `json:"longest_streak"`
	Upcoming        []DeadlineEntry `json:"upcoming_deadlines"`
}

// DeadlineEntry is a goal due within the upcoming-deadline window.
type DeadlineEntry struct {
	GoalID   string            `json:"goal_id"`
	Title    string            `json:"title"`
	Status   domain.GoalStatus `json:"status"`
	Deadline time.Time         `json:"deadline"`
}

const upcomingWindow = 7 * 24 * time.Hour

// Summary computes the dashboard aggregation: status counts, the weighted
// overall progress across goals, completion rate, longest streak and the
// non-completed goals due inside the next seven days sorted by deadline.
func (uc *UseCase) Summary(ctx context.Context, userID string) (*Summary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	goals, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	s := &Summary{TotalGoals: len(goals), Upcoming: []DeadlineEntry{}}
	horizon := uc.clock.Now().Add(upcomingWindow)

	for i := range goals {
		g := &goals[i]
		switch g.Status {
		case domain.StatusCompleted:
			s.CompletedGoals++
		case domain.StatusInProgress:
			s.InProgressGoals++
		}
		if g.Streak > s.LongestStreak {
			s.LongestStreak = g.Streak
		}
		if g.Deadline != nil && g.Deadline.Before(horizon) && !g.IsCompleted() {
			s.Upcoming = append(s.Upcoming, DeadlineEntry{
				GoalID:   g.ID,
				Title:    g.Title,
				Status:   g.Status,
				Deadline: *g.Deadline,
			})
		}
	}

	if s.TotalGoals > 0 {
		weighted := (float64(s.CompletedGoals) + 0.5*float64(s.InProgressGoals)) / float64(s.TotalGoals)
		s.OverallProgress = int(math.Round(weighted * 100))
		s.CompletionRate = int(math.Round(float64(s.CompletedGoals) / float64(s.TotalGoals) * 100))
	}

	sort.Slice(s.Upcoming, func(i, j int) bool {
		return s.Upcoming[i].Deadline.Before(s.Upcoming[j].Deadline)
	})
	return s, nil
}
