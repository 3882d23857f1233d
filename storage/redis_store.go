package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"weekendly.app/config"
	"weekendly.app/errors"
	"weekendly.app/models"
)

// RedisStore persists the serialized plan in redis under PlanKey
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis and verifies the connection
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.NewStorageError("connect to redis", err)
	}

	slog.Info("Redis plan storage connected", "addr", cfg.Addr)
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load(ctx context.Context) (models.WeekendPlan, bool, error) {
	val, err := s.client.Get(ctx, PlanKey).Result()
	if err != nil {
		if err == redis.Nil {
			return models.WeekendPlan{}, false, nil
		}
		return models.WeekendPlan{}, false, errors.NewStorageError("redis get", err)
	}

	plan, err := decodePlan([]byte(val))
	if err != nil {
		return models.WeekendPlan{}, false, err
	}
	return plan, true, nil
}

func (s *RedisStore) Save(ctx context.Context, plan models.WeekendPlan) error {
	data, err := encodePlan(plan)
	if err != nil {
		return err
	}

	// The plan blob never expires; it is overwritten on every mutation.
	if err := s.client.Set(ctx, PlanKey, data, 0).Err(); err != nil {
		return errors.NewStorageError("redis set", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
