package goal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/masterplan/backend/domain"
	"github.com/masterplan/backend/pkg/clock"
	"github.com/masterplan/backend/repository"
)

// Config controls optional store behavior.
type Config struct {
	// SeedDemoData installs the demo goal collection for users that have
	// never saved one.
	SeedDemoData bool
}

// UseCase is the goal store: it owns each user's goal collection, recomputes
// the derived progress/status fields after every mutation and persists the
// full collection back to the blob store.
//
// Calls are serialized with a single mutex. The store is not designed for
// concurrent writers per user; the lock only protects the load-mutate-save
// cycle from interleaving.
type UseCase struct {
	goals  repository.GoalRepository
	clock  clock.Clock
	logger *zap.Logger
	cfg    Config

	mu sync.Mutex
}

func New(goals repository.GoalRepository, clk clock.Clock, logger *zap.Logger, cfg Config) *UseCase {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		goals:  goals,
		clock:  clk,
		logger: logger,
		cfg:    cfg,
	}
}

// GoalInput carries the caller-settable fields of a new goal. Progress is
// never accepted: it is derived.
type GoalInput struct {
	Title       string
	Description string
	Status      domain.GoalStatus
	Deadline    *time.Time
	SubGoals    []SubGoalInput
}

// SubGoalInput carries the caller-settable fields of a sub-goal.
type SubGoalInput struct {
	Title    string
	Status   domain.GoalStatus
	Deadline *time.Time
}

// GoalUpdate is a partial edit; nil fields are left untouched. A non-nil
// SubGoals replaces the sequence wholesale and triggers recomputation.
type GoalUpdate struct {
	Title          *string
	Description    *string
	Status         *domain.GoalStatus
	Deadline       *time.Time
	RemoveDeadline bool
	SubGoals       []SubGoalInput
}

// ListGoals returns the user's full collection.
func (uc *UseCase) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.load(ctx, userID)
}

// GetGoal returns the goal or ErrGoalNotFound. Absence is a soft failure.
func (uc *UseCase) GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	goals, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if i := indexOf(goals, goalID); i >= 0 {
		return &goals[i], nil
	}
	return nil, domain.ErrGoalNotFound
}

// CalculateProgress recomputes the weighted percentage for a goal without
// mutating any state.
func (uc *UseCase) CalculateProgress(ctx context.Context, userID, goalID string) (int, error) {
	goal, err := uc.GetGoal(ctx, userID, goalID)
	if err != nil {
		return 0, err
	}
	return goal.CalculateProgress(), nil
}

// AddGoal constructs and appends a goal. Always succeeds for valid input.
func (uc *UseCase) AddGoal(ctx context.Context, userID string, input GoalInput) (*domain.Goal, error) {
	if input.Title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "goal title is required")
	}

	now := uc.clock.Now()
	status := input.Status
	if status == "" {
		status = domain.StatusNotStarted
	}

	goal := domain.Goal{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Deadline:    input.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
		Progress:    0,
		SubGoals:    buildSubGoals(input.SubGoals),
	}
	touchActivity(&goal, now)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	goals, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals = append(goals, goal)
	if err := uc.goals.SaveCollection(ctx, userID, goals); err != nil {
		return nil, err
	}

	uc.logger.Info("goal added",
		zap.String("user_id", userID), zap.String("goal_id", goal.ID))
	return &goals[len(goals)-1], nil
}

// UpdateGoal merges the partial edit into the goal and refreshes the derived
// fields. A missing goal reports ErrGoalNotFound without touching state.
func (uc *UseCase) UpdateGoal(ctx context.Context, userID, goalID string, update GoalUpdate) (*domain.Goal, error) {
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
	if update.Title != nil {
		goal.Title = *update.Title
	}
	if update.Description != nil {
		goal.Description = *update.Description
	}
	if update.Status != nil && update.Status.Valid() {
		// Honored as-is only for goals without sub-goals; Recalculate
		// overrides it otherwise.
		goal.Status = *update.Status
	}
	if update.RemoveDeadline {
		goal.Deadline = nil
	} else if update.Deadline != nil {
		goal.Deadline = update.Deadline
	}
	if update.SubGoals != nil {
		goal.SubGoals = buildSubGoals(update.SubGoals)
		touchActivity(goal, uc.clock.Now())
	}

	goal.UpdatedAt = uc.clock.Now()
	goal.Recalculate()

	if err := uc.goals.SaveCollection(ctx, userID, goals); err != nil {
		return nil, err
	}
	return goal, nil
}

// DeleteGoal removes the goal and, by composition, all its sub-goals.
// Deleting an absent goal is a no-op.
func (uc *UseCase) DeleteGoal(ctx context.Context, userID, goalID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	goals, err := uc.load(ctx, userID)
	if err != nil {
		return err
	}
	i := indexOf(goals, goalID)
	if i < 0 {
		return nil
	}

	goals = append(goals[:i], goals[i+1:]...)
	if err := uc.goals.SaveCollection(ctx, userID, goals); err != nil {
		return err
	}

	uc.logger.Info("goal deleted",
		zap.String("user_id", userID), zap.String("goal_id", goalID))
	return nil
}

// load fetches the stored collection, installing the demo seed on first use
// when configured.
func (uc *UseCase) load(ctx context.Context, userID string) ([]domain.Goal, error) {
	goals, err := uc.goals.LoadCollection(ctx, userID)
	if err != nil {
		return nil, err
	}
	if goals == nil {
		if !uc.cfg.SeedDemoData {
			return []domain.Goal{}, nil
		}
		goals = demoGoals(uc.clock.Now())
		if err := uc.goals.SaveCollection(ctx, userID, goals); err != nil {
			return nil, err
		}
		uc.logger.Info("seeded demo goals", zap.String("user_id", userID))
	}
	return goals, nil
}

func buildSubGoals(inputs []SubGoalInput) []domain.SubGoal {
	subGoals := make([]domain.SubGoal, 0, len(inputs))
	for _, in := range inputs {
		status := in.Status
		if status == "" {
			status = domain.StatusNotStarted
		}
		subGoals = append(subGoals, domain.SubGoal{
			ID:       uuid.NewString(),
			Title:    in.Title,
			Status:   status,
			Deadline: in.Deadline,
		})
	}
	return subGoals
}

func indexOf(goals []domain.Goal, goalID string) int {
	for i := range goals {
		if goals[i].ID == goalID {
			return i
		}
	}
	return -1
}
