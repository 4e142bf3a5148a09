// cache содержит Redis-кэш счётчиков дашборда: полный пересчёт коллекций
// на каждый заход на сводный экран дорогой, а точность счётчиков до секунды
// не нужна.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// CountsCache — минимальный контракт кэша счётчиков.
type CountsCache interface {
	// Get возвращает карту счётчиков и признак её наличия в кэше.
	Get(ctx context.Context) (map[string]int64, bool, error)
	// Set сохраняет карту с TTL.
	Set(ctx context.Context, counts map[string]int64, ttl time.Duration) error
	// Invalidate сбрасывает кэш (после любой мутации контента).
	Invalidate(ctx context.Context) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb *redis.Client
	key string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если key пустой — используется "console:counts".
func NewRedisCache(redisURL, key string) (CountsCache, error) {
	if key == "" {
		key = "console:counts"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, key: key}, nil
}

// Храним как Redis Hash: имя коллекции -> счётчик.
func (c *redisCache) Get(ctx context.Context) (map[string]int64, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	out := make(map[string]int64, len(m))
	for name, raw := range m {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false, err
		}
		out[name] = n
	}

	return out, true, nil
}

func (c *redisCache) Set(ctx context.Context, counts map[string]int64, ttl time.Duration) error {
	kv := make(map[string]string, len(counts))
	for name, n := range counts {
		kv[name] = strconv.FormatInt(n, 10)
	}

	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, c.key)
	pipe.HSet(ctx, c.key, kv)
	pipe.Expire(ctx, c.key, ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, c.key).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
