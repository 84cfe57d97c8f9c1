package redis

import (
	"context"
	"encoding/json"
	"fmt"

	redislib "github.com/redis/go-redis/v9"

	"github.com/masterplan/backend/domain"
	"github.com/masterplan/backend/repository"
)

type shareRepository struct {
	client *redislib.Client
	prefix string
}

// NewShareRepository creates a Redis-backed share registry for deployments
// that want share links to survive restarts. Entries are stored without TTL;
// expiry belongs to the reserved InviteLink shape, not to this registry.
func NewShareRepository(client *redislib.Client) repository.ShareRepository {
	return &shareRepository{
		client: client,
		prefix: "share:",
	}
}

func (r *shareRepository) Save(ctx context.Context, share *domain.SharedGoal) error {
	if share == nil || share.Token == "" {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(share)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(share.Token), payload, 0).Err()
}

func (r *shareRepository) Get(ctx context.Context, token string) (*domain.SharedGoal, error) {
	result, err := r.client.Get(ctx, r.key(token)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, domain.ErrShareNotFound
		}
		return nil, err
	}

	var share domain.SharedGoal
	if err := json.Unmarshal([]byte(result), &share); err != nil {
		return nil, err
	}
	return &share, nil
}

func (r *shareRepository) key(token string) string {
	return fmt.Sprintf("%s%s", r.prefix, token)
}
