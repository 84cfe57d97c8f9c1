package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/masterplan/backend/domain"
)

// SubGoalUpdate is a partial edit of a sub-goal; nil fields are left
// untouched.
type SubGoalUpdate struct {
	Title          *string
	Status         *domain.GoalStatus
	Deadline       *time.Time
	RemoveDeadline bool
}

// AddSubGoal appends a sub-goal to the named goal and recomputes the parent's
// derived fields.
func (uc *UseCase) AddSubGoal(ctx context.Context, userID, goalID string, input SubGoalInput) (*domain.Goal, error) {
	if input.Title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "sub-goal title is required")
	}

	status := input.Status
	if status == "" {
		status = domain.StatusNotStarted
	}
	subGoal := domain.SubGoal{
		ID:       uuid.NewString(),
		Title:    input.Title,
		Status:   status,
		Deadline: input.Deadline,
	}

	return uc.mutateGoal(ctx, userID, goalID, func(g *domain.Goal) error {
		g.SubGoals = append(g.SubGoals, subGoal)
		return nil
	})
}

// UpdateSubGoal merges the edit into the named sub-goal and recomputes the
// parent's derived fields. Missing ids are soft not-found failures.
func (uc *UseCase) UpdateSubGoal(ctx context.Context, userID, goalID, subGoalID string, update SubGoalUpdate) (*domain.Goal, error) {
	return uc.mutateGoal(ctx, userID, goalID, func(g *domain.Goal) error {
		i := g.SubGoalIndex(subGoalID)
		if i < 0 {
			return domain.ErrSubGoalNotFound
		}
		sg := &g.SubGoals[i]
		if update.Title != nil {
			sg.Title = *update.Title
		}
		if update.Status != nil && update.Status.Valid() {
			sg.Status = *update.Status
		}
		if update.RemoveDeadline {
			sg.Deadline = nil
		} else if update.Deadline != nil {
			sg.Deadline = update.Deadline
		}
		return nil
	})
}

// DeleteSubGoal removes the named sub-goal and recomputes the parent's
// derived fields.
func (uc *UseCase) DeleteSubGoal(ctx context.Context, userID, goalID, subGoalID string) (*domain.Goal, error) {
	return uc.mutateGoal(ctx, userID, goalID, func(g *domain.Goal) error {
		i := g.SubGoalIndex(subGoalID)
		if i < 0 {
			return domain.ErrSubGoalNotFound
		}
		g.SubGoals = append(g.SubGoals[:i], g.SubGoals[i+1:]...)
		return nil
	})
}

// mutateGoal runs fn against the named goal, then stamps UpdatedAt, refreshes
// the derived fields, records streak activity and persists the collection.
// When fn fails nothing is persisted.
func (uc *UseCase) mutateGoal(ctx context.Context, userID, goalID string, fn func(*domain.Goal) error) (*domain.Goal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	goals, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	i := indexOf(goals, goalID)
	if i < 0 {
		return nil, domain.ErrGoalNotFound
	}

	goal := &goals[i]
	if err := fn(goal); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	goal.UpdatedAt = now
	goal.Recalculate()
	touchActivity(goal, now)

	if err := uc.goals.SaveCollection(ctx, userID, goals); err != nil {
		return nil, err
	}
	return goal, nil
}
