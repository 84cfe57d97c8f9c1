package repository

import (
	"context"

	"github.com/masterplan/backend/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
