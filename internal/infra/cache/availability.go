package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	domain "github.com/NovaBeautyTech/salon-manager/internal/domain/appointment"
)

const availabilityTTL = 60 * time.Second

// AvailabilityCache keeps computed free-slot lists per (staff, day) in a
// redis hash keyed by service id. A nil client disables caching entirely,
// so local setups without redis keep working.
type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb}
}

func dayKey(staffID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s", staffID, date)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	staffID uint,
	serviceID uint,
	date string,
) ([]domain.TimeSlot, bool) {

	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.HGet(ctx, dayKey(staffID, date), fmt.Sprint(serviceID)).Result()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	staffID uint,
	serviceID uint,
	date string,
	slots []domain.TimeSlot,
) {

	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	key := dayKey(staffID, date)

	pipe := c.rdb.Pipeline()
	pipe.HSet(ctx, key, fmt.Sprint(serviceID), raw)
	pipe.Expire(ctx, key, availabilityTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		log.WithError(err).Debug("availability cache write failed")
	}
}

// InvalidateDay drops every cached slot list for a staff member's day.
// Called on every booking mutation for that staff/date.
func (c *AvailabilityCache) InvalidateDay(
	ctx context.Context,
	staffID uint,
	date string,
) {

	if c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, dayKey(staffID, date)).Err(); err != nil {
		log.WithError(err).Debug("availability cache invalidation failed")
	}
}
