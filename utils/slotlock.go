package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotLock implements per-(doctor, slot) mutual exclusion with a redis
// SETNX key. The TTL bounds how long a crashed writer can hold a slot.
type SlotLock struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewSlotLock constructs a SlotLock over the lock cache client.
func NewSlotLock() *SlotLock {
	return &SlotLock{
		Client: GetLockCacheClient(),
		TTL:    15 * time.Second,
	}
}

// Acquire attempts to take the lock for the given doctor and slot key.
// It returns whether the lock was taken and a release func. An error means
// the lock backend is unavailable, not that the slot is contended.
func (l *SlotLock) Acquire(ctx context.Context, doctorID, slotKey string) (bool, func(), error) {
	key := "slotlock:" + doctorID + ":" + slotKey
	acquired, err := l.Client.SetNX(ctx, key, "1", l.TTL).Result()
	if err != nil {
		return false, nil, err
	}
	release := func() {
		// Best effort; the TTL cleans up if the delete fails.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		l.Client.Del(releaseCtx, key)
	}
	if !acquired {
		return false, nil, nil
	}
	return true, release, nil
}
