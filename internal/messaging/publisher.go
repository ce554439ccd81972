package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/techchallange/contact-backend/internal/logger"
)

// Publisher delivers domain events to a named channel, best effort. Every
// failure is converted to a false return; no error ever escapes Publish.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload any) bool
	Close() error
}

type redisPublisher struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewRedisPublisher(log *logger.Logger) (Publisher, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisPublisher{
		log: log.With("service", "RedisPublisher"),
		rdb: rdb,
	}, nil
}

func (p *redisPublisher) Publish(ctx context.Context, channel string, payload any) bool {
	if p == nil || p.rdb == nil {
		return false
	}
	if payload == nil {
		return false
	}
	if strings.TrimSpace(channel) == "" {
		p.log.Warn("Publish called without a channel name")
		return false
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		p.log.Warn("Event payload marshal failed", "channel", channel, "error", err)
		return false
	}

	if err := p.rdb.Publish(ctx, channel, raw).Err(); err != nil {
		p.log.Warn("Event delivery failed", "channel", channel, "error", err)
		return false
	}
	return true
}

func (p *redisPublisher) Close() error {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Close()
}
