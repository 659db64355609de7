package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"satsang/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisStorage implementa StorageProvider no Redis.
// Cada chave expira após ttl sem escrita, o que limpa escopos abandonados.
type RedisStorage struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStorage inicializa o cliente Redis.
func NewRedisStorage(addr, password string, db int, ttl time.Duration) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStorage{rdb: rdb, ttl: ttl}
}

// Ping verifica a conexão.
func (s *RedisStorage) Ping(ctx context.Context) error { return s.rdb.Ping(ctx).Err() }

// Close encerra o pool de conexões.
func (s *RedisStorage) Close() error { return s.rdb.Close() }

func (s *RedisStorage) Scope(scopeID string) ports.ScopedStorage {
	if scopeID == "" {
		return nil
	}
	return &redisScope{parent: s, scopeID: scopeID}
}

type redisScope struct {
	parent  *RedisStorage
	scopeID string
}

func (r *redisScope) key(key string) string {
	return fmt.Sprintf("scope:%s:%s", r.scopeID, key)
}

func (r *redisScope) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.parent.rdb.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (r *redisScope) Set(ctx context.Context, key, value string) error {
	return r.parent.rdb.Set(ctx, r.key(key), value, r.parent.ttl).Err()
}

func (r *redisScope) Remove(ctx context.Context, key string) error {
	return r.parent.rdb.Del(ctx, r.key(key)).Err()
}
