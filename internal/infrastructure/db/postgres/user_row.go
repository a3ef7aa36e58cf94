package postgres

import (
	"time"

	"github.com/baechuer/board-service/internal/domain"
)

type userRow struct {
	ID           int64     `db:"user_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

func (ur userRow) toDomain() domain.User {
	return domain.User{
		ID:           ur.ID,
		Email:        ur.Email,
		PasswordHash: ur.PasswordHash,
		DisplayName:  ur.DisplayName,
		Role:         domain.ParseRole(ur.Role),
		CreatedAt:    ur.CreatedAt,
	}
}

type boardRow struct {
	ID          int64     `db:"board_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (br boardRow) toDomain() domain.Board {
	return domain.Board{
		ID:          br.ID,
		Name:        br.Name,
		Description: br.Description,
		CreatedAt:   br.CreatedAt,
	}
}
