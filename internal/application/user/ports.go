package user

import (
	"context"
	"time"

	"github.com/baechuer/board-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
GetByEmail returns domain.ErrUserNotFound when no row matches.
Create returns domain.ErrEmailAlreadyExists on a unique violation.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt. Matches never errors: malformed hashes are a mismatch.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash string, password string) bool
}

/*
TokenIssuer
-----------
Issues access tokens (JWT). Verify is used by the bearer middleware.
*/
type TokenClaims struct {
	UserID      int64
	DisplayName string
	Role        domain.Role
	Exp         time.Time
}

type TokenIssuer interface {
	Issue(userID int64, displayName string, role domain.Role) (string, error)
}

type TokenVerifier interface {
	Verify(token string) (TokenClaims, error)
}

/*
EventPublisher
--------------
Publishes user lifecycle events. Delivery is best-effort.
*/
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error
}

type UserRegisteredEvent struct {
	UserID      int64     `json:"userId"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}
