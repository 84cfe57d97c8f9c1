package memory

import (
	"context"
	"sync"

	"github.com/masterplan/backend/domain"
	"github.com/masterplan/backend/repository"
)

type shareRepository struct {
	mu     sync.RWMutex
	shares map[string]*domain.SharedGoal
}

// NewShareRepository creates the default in-process share registry. Entries
// live for the process lifetime; durability across restarts is a non-goal for
// this backend.
func NewShareRepository() repository.ShareRepository {
	return &shareRepository{shares: make(map[string]*domain.SharedGoal)}
}

func (r *shareRepository) Save(ctx context.Context, share *domain.SharedGoal) error {
	if share == nil || share.Token == "" {
		return domain.ErrInvalidPayload
	}

	// Copy on write so later edits to the caller's goal cannot reach the
	// stored snapshot.
	stored := *share
	stored.Goal = *share.Goal.Clone()

	r.mu.Lock()
	r.shares[share.Token] = &stored
	r.mu.Unlock()
	return nil
}

func (r *shareRepository) Get(ctx context.Context, token string) (*domain.SharedGoal, error) {
	r.mu.RLock()
	stored, ok := r.shares[token]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrShareNotFound
	}

	result := *stored
	result.Goal = *stored.Goal.Clone()
	return &result, nil
}
