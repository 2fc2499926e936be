// Package redis provides the Redis-backed read-through cache for SKU reads.
package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	keyPrefix  = "storefront:sku:"
	defaultTTL = 5 * time.Minute
)

// skuCache keeps JSON-encoded SKUs in Redis. Redis failures degrade to a
// direct load; they are never returned to the caller.
type skuCache struct {
	client *goredis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

// Params holds dependencies for the SKU cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSkuCache connects to cfg.Redis. Without a redis section a pass-through
// cache is returned.
func NewSkuCache(params Params) service.SkuCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, SKU reads are not cached")

		return noopCache{}
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return newSkuCache(client, cfg.TTL, params.Logger)
}

func newSkuCache(client *goredis.Client, ttl time.Duration, logger *slog.Logger) *skuCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &skuCache{client: client, ttl: ttl, logger: logger}
}

func cacheKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// GetOrLoad returns the cached SKU, or loads it once for all concurrent
// callers of the same key and stores the result for the configured TTL.
func (c *skuCache) GetOrLoad(
	ctx context.Context,
	id uuid.UUID,
	load func(ctx context.Context) (*entity.ProductSku, error),
) (*entity.ProductSku, error) {
	key := cacheKey(id)
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var sku entity.ProductSku
		if jsonErr := json.Unmarshal(data, &sku); jsonErr == nil {
			return &sku, nil
		}
		logger.Warn("Dropping undecodable cached SKU", slog.String("key", key))
	case !errors.Is(err, goredis.Nil):
		logger.Warn("SKU cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		sku, err := load(ctx)
		if err != nil {
			return nil, err
		}

		encoded, err := json.Marshal(sku)
		if err != nil {
			return nil, errors.Wrap(err, "encode sku")
		}
		if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			logger.Warn("SKU cache write failed", slog.String("key", key), slog.Any("error", err))
		}

		return sku, nil
	})
	if err != nil {
		return nil, err
	}

	sku := *v.(*entity.ProductSku)

	return &sku, nil
}

// Invalidate removes the cached entry for id.
func (c *skuCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		return errors.Wrapf(err, "invalidate sku %s", id)
	}

	return nil
}

type noopCache struct{}

func (noopCache) GetOrLoad(ctx context.Context, _ uuid.UUID, load func(ctx context.Context) (*entity.ProductSku, error)) (*entity.ProductSku, error) {
	return load(ctx)
}

func (noopCache) Invalidate(context.Context, uuid.UUID) error { return nil }
