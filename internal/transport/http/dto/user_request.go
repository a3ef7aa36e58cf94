package dto

import "github.com/baechuer/board-service/internal/application/user"

// -------- Users --------

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ToInput returns nil for an absent body so the service can reject it.
func (r *RegisterRequest) ToInput() *user.RegisterInput {
	if r == nil {
		return nil
	}
	return &user.RegisterInput{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) ToInput() *user.LoginInput {
	if r == nil {
		return nil
	}
	return &user.LoginInput{Email: r.Email, Password: r.Password}
}
