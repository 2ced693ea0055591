package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL constants
const (
	PlayerStatsTTL = 12 * time.Hour
	SearchTTL      = 1 * time.Hour
)

// RedisCache keeps upstream payloads warm so configuring and playing a
// game does not hit the provider on every request.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// GetPlayerStats returns the cached payload for a player, or nil on a miss.
func (c *RedisCache) GetPlayerStats(ctx context.Context, playerID int) (*PlayerStats, error) {
	key := playerStatsKey(playerID)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *RedisCache) SetPlayerStats(ctx context.Context, playerID int, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshaling player stats: %w", err)
	}
	return c.client.Set(ctx, playerStatsKey(playerID), data, PlayerStatsTTL).Err()
}

func (c *RedisCache) GetSearch(ctx context.Context, name string) ([]PlayerSummary, error) {
	val, err := c.client.Get(ctx, searchKey(name)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var summaries []PlayerSummary
	if err := json.Unmarshal([]byte(val), &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, name string, summaries []PlayerSummary) error {
	data, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("marshaling search results: %w", err)
	}
	return c.client.Set(ctx, searchKey(name), data, SearchTTL).Err()
}

func playerStatsKey(playerID int) string {
	return fmt.Sprintf("player:%d:stats", playerID)
}

func searchKey(name string) string {
	return fmt.Sprintf("player:search:%s", name)
}
