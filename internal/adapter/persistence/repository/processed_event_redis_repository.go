package repository

import (
	"context"
	"time"

	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const processedEventKeyPrefix = "andar:webhook:event:"

// ProcessedEventRedisRepository claims event ids with SET NX and lets Redis expire them.
type ProcessedEventRedisRepository struct {
	client redis.UniversalClient
	prefix string
}

var _ interfaces.IProcessedEventRepository = (*ProcessedEventRedisRepository)(nil)

func NewProcessedEventRedisRepository(client redis.UniversalClient) *ProcessedEventRedisRepository {
	return &ProcessedEventRedisRepository{client: client, prefix: processedEventKeyPrefix}
}

func (r *ProcessedEventRedisRepository) Claim(ctx context.Context, e entities.ProcessedEvent) error {
	ttl := e.ExpiresAt.Sub(e.ProcessedAt)
	if ttl <= 0 {
		ttl = time.Hour
	}
	ok, err := r.client.SetNX(ctx, r.prefix+e.EventID, e.EventType, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return interfaces.ErrEventAlreadyProcessed
	}
	return nil
}
