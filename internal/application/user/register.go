package user

import (
	"context"
	"strconv"

	"github.com/baechuer/board-service/internal/domain"
	"github.com/baechuer/board-service/internal/logger"
)

// Register creates a USER account. A nil input is a generic validation failure.
func (s *Service) Register(ctx context.Context, in *RegisterInput) (RegisterResult, error) {
	if in == nil {
		return RegisterResult{}, domain.ErrValidationFailed(domain.CodeValidationFailed)
	}
	req := in.normalized()

	if err := s.check(req.schema()); err != nil {
		return RegisterResult{}, err
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return RegisterResult{}, domain.ErrDBUnavailable(err)
	}
	if exists {
		return RegisterResult{}, domain.ErrEmailAlreadyExists()
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return RegisterResult{}, domain.ErrHashFailed(err)
	}

	created, err := s.users.Create(ctx, domain.User{
		Email:        req.Email,
		PasswordHash: hash,
		DisplayName:  req.Name,
		Role:         domain.RoleUser,
	})
	if err != nil {
		// a racing insert surfaces as the unique constraint
		if domain.Is(err, domain.CodeEmailAlreadyExists) {
			return RegisterResult{}, domain.ErrEmailAlreadyExists()
		}
		return RegisterResult{}, domain.ErrDBUnavailable(err)
	}

	if s.pub != nil {
		evt := UserRegisteredEvent{
			UserID:      created.ID,
			Email:       created.Email,
			DisplayName: created.DisplayName,
			CreatedAt:   created.CreatedAt,
		}
		if err := s.pub.PublishUserRegistered(ctx, evt); err != nil {
			logger.WithCtx(ctx).Warn().Err(err).Int64("user_id", created.ID).Msg("publish user.registered failed")
		}
	}

	s.audit("user_registered", map[string]string{"user_id": strconv.FormatInt(created.ID, 10)})

	return RegisterResult{
		UserID:      created.ID,
		DisplayName: created.DisplayName,
		Email:       created.Email,
		Role:        created.Role,
		CreatedAt:   created.CreatedAt,
	}, nil
}
