package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"supplysight/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CacheService interface {
	// Product caching
	GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error)
	SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// Forecast caching (nearest upcoming forecast per product)
	GetLatestForecasts(ctx context.Context) ([]*models.DemandForecast, error)
	SetLatestForecasts(ctx context.Context, forecasts []*models.DemandForecast, ttl time.Duration) error
	InvalidateForecasts(ctx context.Context) error

	// Cache invalidation
	InvalidateAll(ctx context.Context) error

	// Health check
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port URLs as well as bare host:port
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	key := fmt.Sprintf("supplysight:product:%s", productID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *redisCacheService) SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error {
	key := fmt.Sprintf("supplysight:product:%s", product.ID.String())
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	key := fmt.Sprintf("supplysight:product:%s", productID.String())
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) GetLatestForecasts(ctx context.Context) ([]*models.DemandForecast, error) {
	key := "supplysight:forecasts:latest"
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var forecasts []*models.DemandForecast
	if err := json.Unmarshal(data, &forecasts); err != nil {
		return nil, err
	}
	return forecasts, nil
}

func (r *redisCacheService) SetLatestForecasts(ctx context.Context, forecasts []*models.DemandForecast, ttl time.Duration) error {
	data, err := json.Marshal(forecasts)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, "supplysight:forecasts:latest", data, ttl).Err()
}

func (r *redisCacheService) InvalidateForecasts(ctx context.Context) error {
	return r.client.Del(ctx, "supplysight:forecasts:latest").Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisCacheService) InvalidateAll(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, "supplysight:*").Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}
