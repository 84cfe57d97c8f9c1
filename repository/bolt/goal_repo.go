package bolt

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/masterplan/backend/domain"
	"github.com/masterplan/backend/internal/infrastructure/blob"
	"github.com/masterplan/backend/repository"
)

const goalsBucket = "goals"

type goalRepository struct {
	store  *blob.Store
	logger *zap.Logger
}

// NewGoalRepository creates a Bolt-backed GoalRepository. Each user's whole
// collection is stored as one JSON blob keyed by user id.
func NewGoalRepository(store *blob.Store, logger *zap.Logger) repository.GoalRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &goalRepository{store: store, logger: logger}
}

func (r *goalRepository) LoadCollection(ctx context.Context, userID string) ([]domain.Goal, error) {
	raw, err := r.store.Get(goalsBucket, userID)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var goals []domain.Goal
	if err := json.Unmarshal(raw, &goals); err != nil {
		// Corrupted blob: discard it and fall back to an empty collection.
		r.logger.Warn("discarding corrupted goal collection",
			zap.String("user_id", userID), zap.Error(err))
		_ = r.store.Delete(goalsBucket, userID)
		return nil, nil
	}
	return goals, nil
}

func (r *goalRepository) SaveCollection(ctx context.Context, userID string, goals []domain.Goal) error {
	if userID == "" {
		return domain.ErrInvalidPayload
	}
	if goals == nil {
		goals = []domain.Goal{}
	}
	payload, err := json.Marshal(goals)
	if err != nil {
		return err
	}
	return r.store.Put(goalsBucket, userID, payload)
}

func (r *goalRepository) DeleteCollection(ctx context.Context, userID string) error {
	return r.store.Delete(goalsBucket, userID)
}

func (r *goalRepository) UserIDs(ctx context.Context) ([]string, error) {
	return r.store.Keys(goalsBucket)
}
