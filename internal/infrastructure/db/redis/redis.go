// Package redis holds the connection glue and the AI generation cache. The
// client is tuned for cache duty: lookups sit on the generation request path,
// so a slow answer must cost less than the model call it would save.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPingTimeout = 5 * time.Second
	defaultOpTimeout   = 500 * time.Millisecond
)

// Config captures the settings for the cache connection.
type Config struct {
	Addr string
	DB   int
	// PingTimeout bounds the startup connectivity check.
	PingTimeout time.Duration
	// OpTimeout bounds individual cache reads and writes.
	OpTimeout time.Duration
}

// Connect initialises the cache client and validates connectivity with a
// ping. Read and write timeouts are capped so cache misses degrade to a live
// model call instead of stalling the request.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}
	opTimeout := cfg.OpTimeout
	if opTimeout <= 0 {
		opTimeout = defaultOpTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		DialTimeout:  pingTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
