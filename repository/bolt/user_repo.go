package bolt

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/masterplan/backend/domain"
	"github.com/masterplan/backend/internal/infrastructure/blob"
	"github.com/masterplan/backend/repository"
)

const usersBucket = "users"

type userRepository struct {
	store  *blob.Store
	logger *zap.Logger
}

// NewUserRepository creates a Bolt-backed UserRepository.
func NewUserRepository(store *blob.Store, logger *zap.Logger) repository.UserRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userRepository{store: store, logger: logger}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	raw, err := r.store.Get(usersBucket, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, domain.ErrUserNotFound
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		// A corrupted session record is dropped rather than surfaced.
		r.logger.Warn("discarding corrupted user record",
			zap.String("user_id", id), zap.Error(err))
		_ = r.store.Delete(usersBucket, id)
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	if user == nil || user.ID == "" {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Put(usersBucket, user.ID, payload)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(usersBucket, id)
}
