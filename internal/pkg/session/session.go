package session

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/clipvibe/ClipVibe/internal/pkg/cache"
	"github.com/clipvibe/ClipVibe/internal/pkg/env"
)

var sessionStore *session.Store

// NewSessionStore creates the shared session store. Sessions live in Redis
// (database 1, the cache uses 0) when a cache client is configured; without
// one the store falls back to fiber's in-memory storage, which is what the
// handler tests run on.
func NewSessionStore() *session.Store {
	cfg := session.Config{
		CookieHTTPOnly: true,
		Expiration:     time.Hour * 24,
		KeyLookup:      "cookie:session_id",
	}

	if cacheClient := cache.GetClient(); cacheClient != nil {
		host := "localhost"
		port := 6379
		if h, p, err := net.SplitHostPort(cacheClient.Options().Addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		password := cacheClient.Options().Password
		if password == "" {
			password = env.GetEnv("CACHE_PASSWORD", "")
		}

		cfg.Storage = redis.New(redis.Config{
			Host:     host,
			Port:     port,
			Password: password,
			Database: 1, // separate database for sessions
			Reset:    false,
		})
	}

	sessionStore = session.New(cfg)

	return sessionStore
}

// GetSessionStore returns the shared session store.
func GetSessionStore() *session.Store {
	if sessionStore == nil {
		return NewSessionStore()
	}
	return sessionStore
}
