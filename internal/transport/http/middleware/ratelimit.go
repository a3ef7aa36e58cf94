package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/httprate"

	"github.com/baechuer/board-service/internal/domain"
	"github.com/baechuer/board-service/internal/logger"
	pkgctx "github.com/baechuer/board-service/internal/pkg/context"
)

// RateLimiter is satisfied by the Redis fixed-window limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}

// FixedWindowConfig defines the configuration for a fixed-window rate limit.
type FixedWindowConfig struct {
	RouteKey string
	Limit    int
	Window   time.Duration
}

func (c FixedWindowConfig) withDefaults() FixedWindowConfig {
	if c.Window <= 0 {
		c.Window = time.Minute
	}
	if c.RouteKey == "" {
		c.RouteKey = "unknown"
	}
	return c
}

// RateLimit picks the Redis limiter when one is configured and falls back to
// an in-process per-IP limiter otherwise. A non-positive limit disables it.
func RateLimit(limiter RateLimiter, cfg FixedWindowConfig, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	cfg = cfg.withDefaults()
	if cfg.Limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if limiter == nil {
		return LocalRateLimit(cfg, writeErr)
	}
	return RateLimitFixedWindow(limiter, cfg, writeErr)
}

// LocalRateLimit limits per client IP inside this process. The IP comes from
// RemoteAddr only; forwarding headers are honoured solely through the
// router's trusted-proxy option.
func LocalRateLimit(cfg FixedWindowConfig, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	cfg = cfg.withDefaults()
	return httprate.Limit(
		cfg.Limit,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			RateLimitedTotal.WithLabelValues(cfg.RouteKey).Inc()
			writeErr(w, r, domain.ErrRateLimited(cfg.RouteKey))
		}),
	)
}

func RateLimitFixedWindow(limiter RateLimiter, cfg FixedWindowConfig, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	cfg = cfg.withDefaults()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			identity := userOrIP(r)
			bucket := windowBucket(time.Now(), cfg.Window)
			key := fmt.Sprintf("rl:%s:%s:%d", cfg.RouteKey, identity, bucket)

			allowed, retry, err := limiter.Allow(r.Context(), key, cfg.Limit, cfg.Window)
			if err != nil {
				// fail-open: availability over strictness
				logger.WithCtx(r.Context()).Warn().Err(err).Str("route", cfg.RouteKey).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				RateLimitedTotal.WithLabelValues(cfg.RouteKey).Inc()
				if retry > 0 {
					secs := int((retry + time.Second - 1) / time.Second)
					w.Header().Set("Retry-After", strconv.Itoa(secs))
				}
				writeErr(w, r, domain.ErrRateLimited(cfg.RouteKey))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func windowBucket(now time.Time, window time.Duration) int64 {
	sec := int64(window.Seconds())
	if sec <= 0 {
		sec = 60
	}
	return now.Unix() / sec
}

// userOrIP prefers the authenticated user id if present; otherwise falls back to client IP.
func userOrIP(r *http.Request) string {
	if uid, ok := pkgctx.GetUserID(r.Context()); ok {
		return "u:" + strconv.FormatInt(uid, 10)
	}
	return "ip:" + clientIP(r)
}

// clientIP reads the peer address. Request headers are never consulted here.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}
