package repository

import (
	"context"

	"github.com/masterplan/backend/domain"
)

// GoalRepository persists each user's goal collection as a single blob, the
// way the key-value store underneath models it. The in-memory working set
// lives in the use case layer; the repository only loads and replaces whole
// collections.
type GoalRepository interface {
	// LoadCollection returns the stored collection for the user. A missing
	// collection is not an error: it yields (nil, nil).
	LoadCollection(ctx context.Context, userID string) ([]domain.Goal, error)
	// SaveCollection replaces the user's stored collection wholesale.
	SaveCollection(ctx context.Context, userID string, goals []domain.Goal) error
	// DeleteCollection drops the stored collection, if any.
	DeleteCollection(ctx context.Context, userID string) error
	// UserIDs lists every user with a stored collection.
	UserIDs(ctx context.Context) ([]string, error)
}
