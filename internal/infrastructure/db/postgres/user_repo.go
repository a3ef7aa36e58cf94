package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/baechuer/board-service/internal/domain"
)

type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `user_id, email, password_hash, display_name, role, created_at`

// ---------- user.UserRepo ----------

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
LIMIT 1;
`
	var ur userRow
	if err := r.db.GetContext(ctx, &ur, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return ur.toDomain(), nil
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, q, email); err != nil {
		return false, domain.ErrDBUnavailable(err)
	}
	return exists, nil
}

// Create inserts the user; id and created_at are assigned by the database.
func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if strings.TrimSpace(u.Email) == "" || u.PasswordHash == "" {
		return domain.User{}, domain.ErrInternal(errors.New("create user: email and password hash are required"))
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}

	const q = `
INSERT INTO users (email, password_hash, display_name, role)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns + `;
`
	var ur userRow
	err := r.db.QueryRowxContext(ctx, q, u.Email, u.PasswordHash, u.DisplayName, string(u.Role)).StructScan(&ur)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return ur.toDomain(), nil
}
