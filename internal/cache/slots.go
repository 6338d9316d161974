package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/careslot/appointment-api/internal/config"
)

const slotTTL = 60 * time.Second

func NewClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unreachable at %s: %v", cfg.RedisAddr, err)
	}

	return client
}

// SlotCache keeps the booked-time set per (doctor, date) for the availability
// read path. It is a best-effort layer: every miss or redis error falls
// through to the database.
type SlotCache struct {
	client *redis.Client
}

func NewSlotCache(client *redis.Client) *SlotCache {
	return &SlotCache{client: client}
}

func slotKey(doctorID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", doctorID, date)
}

func (s *SlotCache) GetBookedTimes(ctx context.Context, doctorID uint, date string) ([]string, bool) {
	if s == nil || s.client == nil {
		return nil, false
	}

	raw, err := s.client.Get(ctx, slotKey(doctorID, date)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("slot cache get failed: %v", err)
		}
		return nil, false
	}

	var times []string
	if err := json.Unmarshal([]byte(raw), &times); err != nil {
		return nil, false
	}
	return times, true
}

func (s *SlotCache) SetBookedTimes(ctx context.Context, doctorID uint, date string, times []string) {
	if s == nil || s.client == nil {
		return
	}

	raw, err := json.Marshal(times)
	if err != nil {
		return
	}

	if err := s.client.Set(ctx, slotKey(doctorID, date), raw, slotTTL).Err(); err != nil {
		log.Printf("slot cache set failed: %v", err)
	}
}

// Invalidate drops the cached set after a reserve or release so the next
// availability read sees the ledger, not a stale copy.
func (s *SlotCache) Invalidate(ctx context.Context, doctorID uint, date string) {
	if s == nil || s.client == nil {
		return
	}

	if err := s.client.Del(ctx, slotKey(doctorID, date)).Err(); err != nil {
		log.Printf("slot cache invalidate failed: %v", err)
	}
}
