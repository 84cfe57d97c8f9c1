package repository

import (
	"context"

	"github.com/masterplan/backend/domain"
)

// ShareRepository maps opaque tokens to immutable goal snapshots. Save is
// write-once per token; Get never mutates the registry.
type ShareRepository interface {
	Save(ctx context.Context, share *domain.SharedGoal) error
	Get(ctx context.Context, token string) (*domain.SharedGoal, error)
}
