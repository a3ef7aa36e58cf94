package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baechuer/board-service/internal/application/board"
	"github.com/baechuer/board-service/internal/application/user"
	"github.com/baechuer/board-service/internal/audit"
	"github.com/baechuer/board-service/internal/config"
	"github.com/baechuer/board-service/internal/infrastructure/db/migrations"
	"github.com/baechuer/board-service/internal/infrastructure/db/postgres"
	"github.com/baechuer/board-service/internal/infrastructure/memory"
	rabbitmq_pub "github.com/baechuer/board-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/board-service/internal/infrastructure/redis"
	"github.com/baechuer/board-service/internal/infrastructure/security"
	"github.com/baechuer/board-service/internal/logger"
	http_handlers "github.com/baechuer/board-service/internal/transport/http/handlers"
	"github.com/baechuer/board-service/internal/transport/http/middleware"
	"github.com/baechuer/board-service/internal/transport/http/response"
	"github.com/baechuer/board-service/internal/transport/http/router"
	"github.com/baechuer/board-service/internal/validation"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (*sqlx.DB, error)

	// Migrate applies the embedded schema; nil skips migrations.
	Migrate func(dbURL string) error

	NewRedis func(addr, password string, db int) *redis.Client

	NewPublisher func(url, exchange string) (Publisher, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

// Publisher is a user event publisher that owns a connection.
type Publisher interface {
	user.EventPublisher
	Close() error
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) security first: a bad key must fail before any connection is opened
	tokens, err := security.NewJWTIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt issuer: %w", err)
	}
	hasher := security.NewBcryptHasher(cfg.BcryptCost)

	// 2) db
	db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	if cfg.DBMigrate && deps.Migrate != nil {
		if err := deps.Migrate(cfg.DBAddr); err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
		logger.Logger.Info().Msg("migrations applied")
	}

	userRepo := postgres.NewUserRepo(db)
	boardRepo := postgres.NewBoardRepo(db)

	// seed (dev only)
	if cfg.IsDev() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := postgres.SeedBoards(ctx, boardRepo); err != nil {
			logger.Logger.Warn().Err(err).Msg("dev board seed failed")
		}
		cancel()
	}

	// 3) redis (best-effort)
	var limiter middleware.RateLimiter
	if cfg.RedisAddr != "" && deps.NewRedis != nil {
		c := deps.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

		if err := c.Ping(context.Background()); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; using in-process rate limiter")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			limiter = redis.NewFixedWindowLimiter(c)
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 4) publisher
	var pub user.EventPublisher = memory.NewNoopPublisher(logger.Logger)
	if cfg.RabbitURL != "" && deps.NewPublisher != nil {
		p, err := deps.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		switch {
		case err == nil:
			pub = p
			cleanupFns = append(cleanupFns, func() { _ = p.Close() })
		case cfg.IsDev():
			logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
		default:
			runCleanup(cleanupFns)
			return nil, nil, err
		}
	}

	// 5) services
	auditLog := audit.New(logger.Logger)
	userSvc := user.NewService(userRepo, hasher, tokens, pub, validation.New()).
		WithAudit(auditLog.Record)
	boardSvc := board.NewService(boardRepo)

	// 6) handlers + middleware
	rl := func(key string, limit int) func(http.Handler) http.Handler {
		return middleware.RateLimit(
			limiter,
			middleware.FixedWindowConfig{
				RouteKey: key,
				Limit:    limit,
				Window:   time.Minute,
			},
			response.WriteError,
		)
	}

	// 7) router
	mux, err := deps.NewRouter(router.Deps{
		Health:  http_handlers.NewHealthHandler(db),
		Users:   http_handlers.NewUserHandler(userSvc),
		Boards:  http_handlers.NewBoardHandler(boardSvc),
		Metrics: promhttp.Handler(),
		AuthMW:  middleware.Auth(tokens, response.WriteError),

		RLRegister: rl("users.register", cfg.RegisterRatePerMin),
		RLLogin:    rl("users.login", cfg.LoginRatePerMin),

		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		TrustProxy:         cfg.TrustProxy,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 8) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      config.NewDB,
		Migrate:    migrations.Up,
		NewRedis:   redis.New,
		NewPublisher: func(url, exchange string) (Publisher, error) {
			return rabbitmq_pub.NewPublisher(url, exchange, logger.Logger)
		},
		NewRouter: router.New,
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
