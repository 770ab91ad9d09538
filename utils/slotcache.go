package utils

import (
	"context"
	"encoding/json"
	"time"

	"telecare/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SlotGridCache holds generated slot grids for a short TTL so repeated
// calendar views do not rescan the appointment collection. Entries are
// invalidated on booking and on availability updates; the short TTL covers
// status changes made outside this process.
type SlotGridCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewSlotGridCache constructs a SlotGridCache over the generic cache client.
func NewSlotGridCache(ttl time.Duration) *SlotGridCache {
	return &SlotGridCache{
		Client: GetCacheClient(),
		TTL:    ttl,
	}
}

func slotCacheKey(doctorID, date string) string {
	return "slots:" + doctorID + ":" + date
}

// Get returns the cached slot grid for a doctor and date, if present.
func (c *SlotGridCache) Get(ctx context.Context, doctorID, date string) ([]models.Slot, bool) {
	payload, err := c.Client.Get(ctx, slotCacheKey(doctorID, date)).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []models.Slot
	if err := json.Unmarshal(payload, &slots); err != nil {
		GetLogger().Warn("discarding corrupt slot cache entry",
			zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
		return nil, false
	}
	return slots, true
}

// Set stores a slot grid. Cache failures are logged, never surfaced.
func (c *SlotGridCache) Set(ctx context.Context, doctorID, date string, slots []models.Slot) {
	payload, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, slotCacheKey(doctorID, date), payload, c.TTL).Err(); err != nil {
		GetLogger().Warn("failed to cache slot grid",
			zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
	}
}

// Invalidate drops the cached grid for one doctor and date.
func (c *SlotGridCache) Invalidate(ctx context.Context, doctorID, date string) {
	if err := c.Client.Del(ctx, slotCacheKey(doctorID, date)).Err(); err != nil {
		GetLogger().Warn("failed to invalidate slot cache entry",
			zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
	}
}

// InvalidateDoctor drops every cached grid for a doctor, used when the
// weekly availability document is replaced.
func (c *SlotGridCache) InvalidateDoctor(ctx context.Context, doctorID string) {
	pattern := "slots:" + doctorID + ":*"
	iter := c.Client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.Client.Del(ctx, iter.Val()).Err(); err != nil {
			GetLogger().Warn("failed to invalidate slot cache entry",
				zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		GetLogger().Warn("slot cache invalidation scan failed",
			zap.String("doctorID", doctorID), zap.Error(err))
	}
}
