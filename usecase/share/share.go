package share

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/masterplan/backend/domain"
	"github.com/masterplan/backend/pkg/clock"
	"github.com/masterplan/backend/repository"
)

// GoalSource resolves live goals; satisfied by the goal use case.
type GoalSource interface {
	GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error)
}

// UseCase issues share tokens and resolves them to point-in-time snapshots.
type UseCase struct {
	goals   GoalSource
	shares  repository.ShareRepository
	clock   clock.Clock
	logger  *zap.Logger
	baseURL string
}

func New(goals GoalSource, shares repository.ShareRepository, clk clock.Clock, baseURL string, logger *zap.Logger) *UseCase {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		goals:   goals,
		shares:  shares,
		clock:   clk,
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ShareResult is the issued viewer link.
type ShareResult struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// ShareGoal snapshots the goal under a fresh random token and returns the
// viewer URL. A missing goal fails with ErrGoalNotFound and leaves the
// registry untouched.
func (uc *UseCase) ShareGoal(ctx context.Context, userID, goalID string) (*ShareResult, error) {
	goal, err := uc.goals.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	snapshot := goal.Clone()
	snapshot.Shared = true

	token := uuid.NewString()
	record := &domain.SharedGoal{
		Token:    token,
		OwnerID:  userID,
		Goal:     *snapshot,
		SharedAt: uc.clock.Now(),
	}
	if err := uc.shares.Save(ctx, record); err != nil {
		return nil, err
	}

	uc.logger.Info("goal shared",
		zap.String("user_id", userID), zap.String("goal_id", goalID))
	return &ShareResult{
		Token: token,
		URL:   fmt.Sprintf("%s/shared/%s", uc.baseURL, token),
	}, nil
}

// FetchSharedGoal resolves a token to its stored snapshot, or ErrShareNotFound.
// Resolution never mutates the registry and never reflects later changes to
// the live goal.
func (uc *UseCase) FetchSharedGoal(ctx context.Context, token string) (*domain.Goal, error) {
	record, err := uc.shares.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return &record.Goal, nil
}
