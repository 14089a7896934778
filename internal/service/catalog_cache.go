package service

import (
	"context"
	"encoding/json"
	"time"

	"vetclinic-backend/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key holding the serialized treatment price map
	treatmentPricesKey = "catalog:treatment_prices"

	// Cached prices expire on their own even if an invalidation is missed
	treatmentPricesTTL = 10 * time.Minute
)

// PriceCatalog resolves treatment names to catalog prices for invoice
// calculation.
type PriceCatalog interface {
	TreatmentPrices(ctx context.Context) (map[string]decimal.Decimal, error)
	Invalidate(ctx context.Context)
}

// redisPriceCatalog is a read-through cache: the treatment catalog is
// read-mostly, so price lookups during appointment completion hit Redis
// and only fall back to the store on a miss. Catalog writes invalidate.
type redisPriceCatalog struct {
	client        *redis.Client
	log           *logrus.Logger
	treatmentRepo repository.TreatmentRepository
}

func NewPriceCatalog(client *redis.Client, log *logrus.Logger, treatmentRepo repository.TreatmentRepository) PriceCatalog {
	return &redisPriceCatalog{
		client:        client,
		log:           log,
		treatmentRepo: treatmentRepo,
	}
}

func (c *redisPriceCatalog) TreatmentPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	cached, err := c.client.Get(ctx, treatmentPricesKey).Result()
	if err == nil {
		var prices map[string]decimal.Decimal
		unmarshalErr := json.Unmarshal([]byte(cached), &prices)
		if unmarshalErr == nil {
			return prices, nil
		}
		// Corrupt cache entry: drop it and reload from the store
		c.log.Warnf("Dropping unreadable treatment price cache: %+v", unmarshalErr)
		c.client.Del(ctx, treatmentPricesKey)
	} else if err != redis.Nil {
		c.log.Warnf("Redis unavailable for price lookup, falling back to store: %+v", err)
	}

	treatments, err := c.treatmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]decimal.Decimal, len(treatments))
	for _, t := range treatments {
		prices[t.Name] = t.Price
	}

	if payload, err := json.Marshal(prices); err == nil {
		if err := c.client.Set(ctx, treatmentPricesKey, payload, treatmentPricesTTL).Err(); err != nil {
			c.log.Warnf("Failed to cache treatment prices (non-fatal): %+v", err)
		}
	}

	return prices, nil
}

func (c *redisPriceCatalog) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, treatmentPricesKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate treatment price cache (non-fatal): %+v", err)
	}
}
