package domain

import (
	"math"
	"time"
)

// GoalStatus enumerates the lifecycle states shared by goals and sub-goals.
type GoalStatus string

const (
	StatusNotStarted GoalStatus = "not-started"
	StatusInProgress GoalStatus = "in-progress"
	StatusCompleted  GoalStatus = "completed"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// SubGoal is a discrete, independently-statused step within a goal.
type SubGoal struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Status   GoalStatus `json:"status"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// Goal represents a user-owned trackable objective. Progress and Status are
// derived from the sub-goal statuses; they are recomputed after every sub-goal
// mutation and never accepted from callers directly.
type Goal struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         GoalStatus `json:"status"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Progress       int        `json:"progress"`
	SubGoals       []SubGoal  `json:"sub_goals"`
	Streak         int        `json:"streak,omitempty"`
	Shared         bool       `json:"shared,omitempty"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
}

// CalculateProgress returns the weighted completion percentage: completed
// sub-goals count fully, in-progress ones count half. Goals without sub-goals
// report zero.
func (g *Goal) CalculateProgress() int {
	if g == nil || len(g.SubGoals) == 0 {
		return 0
	}

	var completed, inProgress int
	for _, sg := range g.SubGoals {
		switch sg.Status {
		case StatusCompleted:
			completed++
		case StatusInProgress:
			inProgress++
		}
	}

	weighted := (float64(completed) + 0.5*float64(inProgress)) / float64(len(g.SubGoals))
	return int(math.Round(weighted * 100))
}

// Recalculate refreshes the derived Progress and Status fields. A goal with no
// sub-goals keeps whatever status was last explicitly set.
func (g *Goal) Recalculate() {
	if g == nil {
		return
	}
	g.Progress = g.CalculateProgress()
	if len(g.SubGoals) == 0 {
		return
	}
	switch {
	case g.Progress == 100:
		g.Status = StatusCompleted
	case g.Progress > 0:
		g.Status = StatusInProgress
	default:
		g.Status = StatusNotStarted
	}
}

// SubGoalIndex returns the position of the sub-goal with the given id, or -1.
func (g *Goal) SubGoalIndex(id string) int {
	if g == nil {
		return -1
	}
	for i := range g.SubGoals {
		if g.SubGoals[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so snapshots never alias the live goal.
func (g *Goal) Clone() *Goal {
	if g == nil {
		return nil
	}
	dup := *g
	dup.Deadline = cloneTime(g.Deadline)
	dup.LastActivityAt = cloneTime(g.LastActivityAt)
	if g.SubGoals != nil {
		dup.SubGoals = make([]SubGoal, len(g.SubGoals))
		for i, sg := range g.SubGoals {
			dup.SubGoals[i] = sg
			dup.SubGoals[i].Deadline = cloneTime(sg.Deadline)
		}
	}
	return &dup
}

func (g *Goal) IsCompleted() bool {
	return g != nil && g.Status == StatusCompleted
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	dup := *t
	return &dup
}
