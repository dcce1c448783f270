package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tipjar/internal/models"

	"github.com/redis/go-redis/v9"
)

// TTLs for the entity caches.
const (
	WalletTTL      = 5 * time.Minute
	LeaderboardTTL = time.Minute
	RateTTL        = 10 * time.Minute
)

// ErrCacheMiss is returned when a typed getter finds nothing.
var ErrCacheMiss = errors.New("cache miss")

// Service wraps Redis with JSON marshalling and typed entity helpers.
type Service struct {
	client *redis.Client
	ttl    time.Duration
}

func NewService(client *redis.Client, defaultTTL time.Duration) *Service {
	return &Service{client: client, ttl: defaultTTL}
}

// Base operations

func (s *Service) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *Service) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *Service) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *Service) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *Service) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *Service) Close() error {
	return s.client.Close()
}

// Key generation
func (s *Service) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Wallet caching

func (s *Service) CacheWallet(ctx context.Context, wallet *models.Wallet) error {
	if wallet == nil {
		return errors.New("cannot cache nil wallet")
	}
	key := s.GenerateKey("wallet", "user", wallet.UserID)
	return s.SetWithTTL(ctx, key, wallet, WalletTTL)
}

func (s *Service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	key := s.GenerateKey("wallet", "user", userID)
	var wallet models.Wallet
	found, err := s.Get(ctx, key, &wallet)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCacheMiss
	}
	return &wallet, nil
}

func (s *Service) InvalidateWallet(ctx context.Context, userID uint) error {
	return s.Delete(ctx, s.GenerateKey("wallet", "user", userID))
}

// Leaderboard caching

func (s *Service) CacheLeaderboardEntries(ctx context.Context, leaderboardID uint, entries []models.LeaderboardEntry) error {
	key := s.GenerateKey("leaderboard", "entries", leaderboardID)
	return s.SetWithTTL(ctx, key, entries, LeaderboardTTL)
}

func (s *Service) GetLeaderboardEntries(ctx context.Context, leaderboardID uint) ([]models.LeaderboardEntry, error) {
	key := s.GenerateKey("leaderboard", "entries", leaderboardID)
	var entries []models.LeaderboardEntry
	found, err := s.Get(ctx, key, &entries)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCacheMiss
	}
	return entries, nil
}

func (s *Service) InvalidateLeaderboards(ctx context.Context) error {
	keys, err := s.client.Keys(ctx, "leaderboard:entries:*").Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return s.client.Del(ctx, keys...).Err()
	}
	return nil
}

// Exchange rate caching

func (s *Service) CacheRate(ctx context.Context, currency string, rate float64) error {
	key := s.GenerateKey("rate", "fiat", currency)
	return s.SetWithTTL(ctx, key, rate, RateTTL)
}

func (s *Service) GetRate(ctx context.Context, currency string) (float64, error) {
	key := s.GenerateKey("rate", "fiat", currency)
	var rate float64
	found, err := s.Get(ctx, key, &rate)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrCacheMiss
	}
	return rate, nil
}
