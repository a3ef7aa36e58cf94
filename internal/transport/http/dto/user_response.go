package dto

import (
	"time"

	"github.com/baechuer/board-service/internal/application/user"
)

type RegisterResponse struct {
	UserID      int64     `json:"userId"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewRegisterResponse(res user.RegisterResult) RegisterResponse {
	return RegisterResponse{
		UserID:      res.UserID,
		DisplayName: res.DisplayName,
		Email:       res.Email,
		Role:        string(res.Role),
		CreatedAt:   res.CreatedAt.UTC(),
	}
}

type LoginResponse struct {
	UserID      int64  `json:"userId"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

func NewLoginResponse(res user.LoginResult) LoginResponse {
	return LoginResponse{
		UserID:      res.UserID,
		DisplayName: res.DisplayName,
		Role:        string(res.Role),
		AccessToken: res.AccessToken,
	}
}
