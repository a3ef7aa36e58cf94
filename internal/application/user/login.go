package user

import (
	"context"
	"strconv"

	"github.com/baechuer/board-service/internal/domain"
)

// Login authenticates a user and issues an access token.
// IMPORTANT: an unknown email and a wrong password fail identically.
func (s *Service) Login(ctx context.Context, in *LoginInput) (LoginResult, error) {
	if in == nil {
		return LoginResult{}, domain.ErrValidationFailed(domain.CodeValidationFailed)
	}
	req := in.normalized()

	if err := s.check(req.schema()); err != nil {
		return LoginResult{}, err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if domain.Is(err, domain.CodeUserNotFound) {
			s.audit("login_failed", map[string]string{"reason": "unknown_email"})
			return LoginResult{}, domain.ErrAuthenticationFailed()
		}
		return LoginResult{}, domain.ErrDBUnavailable(err)
	}

	if !s.hasher.Matches(u.PasswordHash, req.Password) {
		s.audit("login_failed", map[string]string{"reason": "bad_password"})
		return LoginResult{}, domain.ErrAuthenticationFailed()
	}

	tok, err := s.tokens.Issue(u.ID, u.DisplayName, u.Role)
	if err != nil {
		return LoginResult{}, domain.ErrTokenSignFailed(err)
	}

	s.audit("login_success", map[string]string{"user_id": strconv.FormatInt(u.ID, 10)})

	return LoginResult{
		UserID:      u.ID,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		AccessToken: tok,
	}, nil
}
