package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// SummaryTTL bounds how stale a cached clinical summary can get.
const SummaryTTL = 5 * time.Minute

func summaryKey(userID uint) string {
	return fmt.Sprintf("clinical_summary:%d", userID)
}

// GetCachedSummary returns the cached summary for a patient, or "" on miss.
func GetCachedSummary(userID uint) string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(Ctx, summaryKey(userID)).Result()
	if err != nil {
		return ""
	}
	return val
}

// CacheSummary stores a freshly generated summary with the standard TTL.
func CacheSummary(userID uint, summary string) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, summaryKey(userID), summary, SummaryTTL)
}

// InvalidateSummary drops the cached summary, called when the patient posts
// a new chat message.
func InvalidateSummary(userID uint) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, summaryKey(userID))
}
