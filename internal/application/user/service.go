package user

import (
	"time"

	"github.com/baechuer/board-service/internal/domain"
	"github.com/baechuer/board-service/internal/validation"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	tokens TokenIssuer
	pub    EventPublisher
	val    *validation.Validator
	now    func() time.Time
	audit  func(action string, fields map[string]string)
}

func NewService(
	users UserRepo,
	hasher PasswordHasher,
	tokens TokenIssuer,
	pub EventPublisher,
	val *validation.Validator,
) *Service {
	if val == nil {
		val = validation.New()
	}
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		pub:    pub,
		val:    val,
		now:    time.Now,
		audit:  func(string, map[string]string) {},
	}
}

// RegisterResult is the public projection of a new account.
type RegisterResult struct {
	UserID      int64
	DisplayName string
	Email       string
	Role        domain.Role
	CreatedAt   time.Time
}

type LoginResult struct {
	UserID      int64
	DisplayName string
	Role        domain.Role
	AccessToken string
}

func (s *Service) WithAudit(fn func(action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

// check validates a schema and converts the violations to one domain error.
func (s *Service) check(schema validation.Schema) error {
	if vs := s.val.Validate(schema); len(vs) > 0 {
		return domain.ErrValidationFailed(validation.Code(vs))
	}
	return nil
}
