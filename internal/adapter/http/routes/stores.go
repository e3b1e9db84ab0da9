package routes

import (
	"andar_membership/internal/adapter/persistence/repository"
	"andar_membership/internal/config"
	"andar_membership/internal/infrastructure/database"
	"andar_membership/internal/usecase/interfaces"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type stores struct {
	processedEvents interfaces.IProcessedEventRepository
	notifications   interfaces.INotificationRepository
	closers         []func() error
}

func (s *stores) Close() {
	for _, c := range s.closers {
		_ = c()
	}
}

// newStores selects the idempotency ledger and notification log from EVENT_STORE.
// The redis ledger keeps notifications in memory.
func newStores(ctx context.Context, cfg config.Config, log *zap.Logger) (*stores, error) {
	switch cfg.EventStore {
	case config.EventStoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Info("[routes] using dynamodb stores",
			zap.String("processed_events_table", cfg.ProcessedEventTable),
			zap.String("notifications_table", cfg.NotificationsTable),
		)
		return &stores{
			processedEvents: repository.NewProcessedEventDynamoRepository(ddb, cfg.ProcessedEventTable),
			notifications:   repository.NewNotificationDynamoRepository(ddb, cfg.NotificationsTable),
		}, nil

	case config.EventStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			// Claims fail open, so the service still starts.
			log.Warn("[routes] redis not reachable at startup", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		log.Info("[routes] using redis idempotency ledger", zap.String("addr", cfg.RedisAddr))
		return &stores{
			processedEvents: repository.NewProcessedEventRedisRepository(client),
			notifications:   repository.NewNotificationMemoryRepository(),
			closers:         []func() error{client.Close},
		}, nil

	case config.EventStoreMemory, "":
		log.Info("[routes] using in-memory stores")
		return &stores{
			processedEvents: repository.NewProcessedEventMemoryRepository(),
			notifications:   repository.NewNotificationMemoryRepository(),
		}, nil

	default:
		return nil, fmt.Errorf("unknown EVENT_STORE %q", cfg.EventStore)
	}
}
