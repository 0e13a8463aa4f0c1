package oauth

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	redisstorage "github.com/gofiber/storage/redis"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/clipvibe/ClipVibe/internal/pkg/cache"
	"github.com/clipvibe/ClipVibe/internal/pkg/env"
)

// Setup registers the Google provider and the session store Goth uses for
// its OAuth state. Safe to call multiple times; providers are re-registered.
func Setup() {
	base := strings.TrimRight(env.GetEnv("PUBLIC_DOMAIN", ""), "/")
	if base == "" {
		base = "http://localhost:" + env.GetEnv("APP_PORT", "4000")
	}

	goth.UseProviders(
		google.New(
			env.GetEnv("GOOGLE_KEY", ""),
			env.GetEnv("GOOGLE_SECRET", ""),
			base+"/auth/google/callback",
			"email", "profile",
		),
	)

	cfg := session.Config{
		KeyLookup:      "cookie:" + gothic.SessionName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   !env.IsDev(),
		Expiration:     72 * time.Hour,
	}

	// OAuth state via Redis, same connection as app sessions (separate DB)
	if cacheClient := cache.GetClient(); cacheClient != nil {
		cacheOpts := cacheClient.Options()
		host, port := "127.0.0.1", 6379
		if cacheOpts.Addr != "" {
			if h, p, err := net.SplitHostPort(cacheOpts.Addr); err == nil {
				host = h
				if parsed, e := strconv.Atoi(p); e == nil {
					port = parsed
				}
			} else {
				host = cacheOpts.Addr
			}
		}

		cfg.Storage = redisstorage.New(redisstorage.Config{
			Host:     host,
			Port:     port,
			Username: cacheOpts.Username,
			Password: cacheOpts.Password,
			Database: 2,
			Reset:    false,
		})
	}

	gothfiber.SessionStore = session.New(cfg)
}
