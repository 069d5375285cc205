package redis

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis"

	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/config"
)

// Cache keeps classifier results keyed by the text that was classified, so a
// repeated text skips the two-phase inference call while the entry lives.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg *config.Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
	})

	return &Cache{
		client: client,
		ttl:    cfg.Redis.TTL,
	}
}

func (c *Cache) Close() {
	_ = c.client.Close()
}

// GetSentiment returns the cached label for text; redis.Nil on a miss.
func (c *Cache) GetSentiment(text string) (string, error) {
	return c.client.Get(sentimentKey(text)).Result()
}

func (c *Cache) SetSentiment(text, label string) error {
	return c.client.Set(sentimentKey(text), label, c.ttl).Err()
}

func sentimentKey(text string) string {
	sum := sha1.Sum([]byte(text))
	return "sentiment:" + hex.EncodeToString(sum[:])
}
