package cache

import (
	"context"
	"fmt"
	"time"
	"yatube/internal/config"

	"github.com/redis/go-redis/v9"
)

const indexKeyPrefix = "feed:index:"

// PageCache хранит готовый JSON главной ленты на короткое время.
// Запись постов кеш не сбрасывает: главная страница читается намного
// чаще, чем пишется, и до истечения TTL отдается как есть.
type PageCache interface {
	GetOrCompute(ctx context.Context, pageNumber int, compute func() ([]byte, error)) ([]byte, error)
	Clear(ctx context.Context) error
}

type RedisPageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("не удалось подключиться к Redis: %w", err)
	}

	return client, nil
}

func NewRedisPageCache(client *redis.Client, ttl time.Duration) *RedisPageCache {
	return &RedisPageCache{client: client, ttl: ttl}
}

// GetOrCompute отдает закешированную страницу, а на промахе вычисляет
// и кладет ее с TTL. Слот страницы перезаписывается целиком, так что
// параллельные промахи просто перетирают друг друга одинаковым значением.
func (c *RedisPageCache) GetOrCompute(ctx context.Context, pageNumber int, compute func() ([]byte, error)) ([]byte, error) {
	key := fmt.Sprintf("%s%d", indexKeyPrefix, pageNumber)

	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		return data, nil
	}

	payload, err := compute()
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return nil, fmt.Errorf("ошибка при записи страницы в кеш: %w", err)
	}

	return payload, nil
}

// Clear удаляет все страницы главной ленты независимо от остатка TTL.
func (c *RedisPageCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, indexKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("ошибка при очистке кеша: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("ошибка при обходе ключей кеша: %w", err)
	}

	return nil
}
