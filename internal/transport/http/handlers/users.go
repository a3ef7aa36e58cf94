package http_handlers

import (
	"context"
	"net/http"

	"github.com/baechuer/board-service/internal/application/user"
	"github.com/baechuer/board-service/internal/domain"
	"github.com/baechuer/board-service/internal/logger"
	"github.com/baechuer/board-service/internal/transport/http/dto"
	"github.com/baechuer/board-service/internal/transport/http/middleware"
	"github.com/baechuer/board-service/internal/transport/http/response"
)

type UserService interface {
	Register(ctx context.Context, in *user.RegisterInput) (user.RegisterResult, error)
	Login(ctx context.Context, in *user.LoginInput) (user.LoginResult, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register handles POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req *dto.RegisterRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		middleware.RegistrationsTotal.WithLabelValues("validation_failed").Inc()
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), req.ToInput())
	if err != nil {
		middleware.RegistrationsTotal.WithLabelValues(registerStatus(err)).Inc()
		response.WriteError(w, r, err)
		return
	}
	middleware.RegistrationsTotal.WithLabelValues("success").Inc()

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", res.UserID).
		Msg("user_registered")

	response.Created(w, dto.NewRegisterResponse(res))
}

// Login handles POST /users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req *dto.LoginRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		middleware.LoginAttemptsTotal.WithLabelValues("validation_failed").Inc()
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.ToInput())
	if err != nil {
		middleware.LoginAttemptsTotal.WithLabelValues(loginStatus(err)).Inc()
		response.WriteError(w, r, err)
		return
	}
	middleware.LoginAttemptsTotal.WithLabelValues("success").Inc()

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", res.UserID).
		Msg("user_logged_in")

	response.OK(w, dto.NewLoginResponse(res))
}

func registerStatus(err error) string {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return "validation_failed"
	case domain.KindConflict:
		return "duplicate_email"
	default:
		return "error"
	}
}

func loginStatus(err error) string {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return "validation_failed"
	case domain.KindAuth:
		return "invalid_credentials"
	default:
		return "error"
	}
}
