package otp

import (
	"context"
	"log/slog"
	"time"

	"farmgrid/config"
	"farmgrid/internal/domain/service"
	"farmgrid/internal/errors"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "otp:"

// redisStore keeps codes in Redis so multiple gateway instances share one
// code space. Redis owns expiry via key TTLs.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg *config.RedisConfig, logger *slog.Logger) (service.OTPStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping Redis")
	}

	logger.Info("Redis OTP store initialized", slog.String("addr", cfg.Addr))

	return &redisStore{
		client: client,
	}, nil
}

// Put stores code for phone with the given lifetime.
func (s *redisStore) Put(ctx context.Context, phone, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, redisKeyPrefix+phone, code, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store verification code")
	}

	return nil
}

// Take removes and returns the live code for phone. GETDEL makes the
// consume-on-read atomic across instances.
func (s *redisStore) Take(ctx context.Context, phone string) (string, bool, error) {
	code, err := s.client.GetDel(ctx, redisKeyPrefix+phone).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, errors.Wrap(err, "failed to take verification code")
	}

	return code, true, nil
}
