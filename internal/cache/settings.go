package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopmart/shopmart/internal/models"
)

const settingsTTL = 5 * time.Minute

// SettingsSource is the authoritative backend consulted on cache miss.
type SettingsSource interface {
	GetSettings(ctx context.Context, storeID uuid.UUID) (models.StoreSettings, error)
}

// SettingsCache caches per-store checkout settings in redis. Settings are
// read on every quote, so misses fall through to the store repository and
// write back with a TTL.
type SettingsCache struct {
	rdb    *redis.Client
	source SettingsSource
}

// NewSettingsCache creates new SettingsCache instance
func NewSettingsCache(rdb *redis.Client, source SettingsSource) *SettingsCache {
	return &SettingsCache{rdb: rdb, source: source}
}

func settingsKey(storeID uuid.UUID) string {
	return fmt.Sprintf("store:%s:settings", storeID)
}

// GetSettings returns the store settings, from redis when possible.
func (sc *SettingsCache) GetSettings(ctx context.Context, storeID uuid.UUID) (models.StoreSettings, error) {
	key := settingsKey(storeID)

	if data, err := sc.rdb.Get(ctx, key).Bytes(); err == nil {
		settings := models.StoreSettings{}
		if err := json.Unmarshal(data, &settings); err == nil {
			return settings, nil
		}
	}

	settings, err := sc.source.GetSettings(ctx, storeID)
	if err != nil {
		return models.StoreSettings{}, err
	}

	if data, err := json.Marshal(settings); err == nil {
		// cache failures are not fatal, the source already answered
		sc.rdb.Set(ctx, key, data, settingsTTL)
	}

	return settings, nil
}

// Invalidate drops the cached settings for a store.
func (sc *SettingsCache) Invalidate(ctx context.Context, storeID uuid.UUID) error {
	return sc.rdb.Del(ctx, settingsKey(storeID)).Err()
}
