package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	rulesRepo "courtbook/database/repository/rules"
	"courtbook/models"
	"courtbook/utils"
)

const activeRulesCacheKey = "pricing:active-rules"

// RedisRuleCache is a short-TTL cache in front of the pricing rule
// repository. Rules are read on every booking and preview but change
// rarely. Cache failures degrade to repository reads.
type RedisRuleCache struct {
	Repo   rulesRepo.PricingRuleRepository
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisRuleCache wraps the rule repository with a redis cache.
func NewRedisRuleCache(repo rulesRepo.PricingRuleRepository, client *redis.Client, ttl time.Duration) *RedisRuleCache {
	return &RedisRuleCache{Repo: repo, Client: client, TTL: ttl}
}

func (c *RedisRuleCache) ListActive(ctx context.Context) ([]models.PricingRule, error) {
	logger := utils.GetLogger()

	cached, err := c.Client.Get(ctx, activeRulesCacheKey).Result()
	if err == nil {
		var rules []models.PricingRule
		if err := json.Unmarshal([]byte(cached), &rules); err == nil {
			return rules, nil
		}
		logger.Warn("discarding corrupt rule cache entry", zap.Error(err))
	} else if err != redis.Nil {
		logger.Warn("rule cache read failed, falling back to store", zap.Error(err))
	}

	rules, err := c.Repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rules); err == nil {
		if err := c.Client.Set(ctx, activeRulesCacheKey, data, c.TTL).Err(); err != nil {
			logger.Warn("rule cache write failed", zap.Error(err))
		}
	}
	return rules, nil
}

// Invalidate drops the cached rule set, called after admin writes.
func (c *RedisRuleCache) Invalidate(ctx context.Context) {
	if err := c.Client.Del(ctx, activeRulesCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("rule cache invalidation failed", zap.Error(err))
	}
}
