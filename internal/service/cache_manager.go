package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache key builders. Mutating usecases use these to invalidate the
// single-item key plus the list pattern that depends on it.
func UserCacheKey(id uuid.UUID) string     { return fmt.Sprintf("user:%s", id) }
func ClinicCacheKey(id uuid.UUID) string   { return fmt.Sprintf("clinic:%s", id) }
func DoctorCacheKey(id uuid.UUID) string   { return fmt.Sprintf("doctor:%s", id) }
func PharmacyCacheKey(id uuid.UUID) string { return fmt.Sprintf("pharmacy:%s", id) }

// BlacklistCacheKey marks a refresh token as revoked until it expires.
func BlacklistCacheKey(token string) string { return fmt.Sprintf("blacklist:%s", token) }

const (
	ClinicListCachePattern = "clinic:list:*"
	DoctorListCachePattern = "doctor:list:*"

	UserCacheTTL = 30 * time.Minute
	ListCacheTTL = 5 * time.Minute
)

// CacheManager is a best-effort JSON key/value cache on top of Redis.
// Every operation fails open: an underlying error is logged and treated as
// a miss or no-op, never propagated to the caller.
type CacheManager struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewCacheManager(client *redis.Client, log *logrus.Logger) *CacheManager {
	return &CacheManager{client: client, log: log}
}

// GetJSON reads key into dest. Returns false on miss, expiry, decode
// failure, or any Redis error.
func (c *CacheManager) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	raw, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Warnf("Cache get failed for %s: %+v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.log.Warnf("Cache decode failed for %s: %+v", key, err)
		return false
	}
	return true
}

func (c *CacheManager) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Cache encode failed for %s: %+v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warnf("Cache set failed for %s: %+v", key, err)
	}
}

func (c *CacheManager) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Warnf("Cache delete failed for %s: %+v", key, err)
	}
}

// DeletePattern removes all keys matching a glob pattern and returns how
// many were deleted.
func (c *CacheManager) DeletePattern(ctx context.Context, pattern string) int64 {
	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil {
		c.log.Warnf("Cache pattern scan failed for %s: %+v", pattern, err)
		return 0
	}
	if len(keys) == 0 {
		return 0
	}
	deleted, err := c.client.Del(ctx, keys...).Result()
	if err != nil {
		c.log.Warnf("Cache pattern delete failed for %s: %+v", pattern, err)
		return 0
	}
	return deleted
}

// Exists is used by the auth flow for refresh-token blacklist lookups.
// Fails open to "not present".
func (c *CacheManager) Exists(ctx context.Context, key string) bool {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		c.log.Warnf("Cache exists failed for %s: %+v", key, err)
		return false
	}
	return n > 0
}

// SetRaw stores a plain string value, used for blacklist entries.
func (c *CacheManager) SetRaw(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Warnf("Cache set failed for %s: %+v", key, err)
	}
}
