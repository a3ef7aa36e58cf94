package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/baechuer/board-service/internal/domain"
	"github.com/baechuer/board-service/internal/transport/http/middleware"
	"github.com/baechuer/board-service/internal/transport/http/response"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BoardHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health HealthHandler
	Users  UserHandler
	Boards BoardHandler

	// Metrics serves the Prometheus exposition; nil disables /metrics.
	Metrics http.Handler

	AuthMW func(http.Handler) http.Handler

	// optional (nil = no limit)
	RLRegister func(http.Handler) http.Handler
	RLLogin    func(http.Handler) http.Handler

	CORSAllowedOrigins []string

	// TrustProxy rewrites RemoteAddr from X-Forwarded-For / X-Real-IP.
	// Only enable behind a proxy that overwrites those headers.
	TrustProxy bool
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Users == nil {
		return nil, fmt.Errorf("nil Users handler")
	}
	if deps.Boards == nil {
		return nil, fmt.Errorf("nil Boards handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()

	if deps.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.HeaderXRequestID},
		ExposedHeaders:   []string{middleware.HeaderXRequestID, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.WriteError(w, r, domain.ErrRouteNotFound())
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.WriteError(w, r, domain.ErrMethodNotAllowed())
	})

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/users", func(r chi.Router) {
		r.With(optional(deps.RLRegister)).Post("/register", deps.Users.Register)
		r.With(optional(deps.RLLogin)).Post("/login", deps.Users.Login)
	})

	r.With(deps.AuthMW).Get("/boards", deps.Boards.List)

	return r, nil
}

func optional(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
