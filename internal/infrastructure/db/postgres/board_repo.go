package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/baechuer/board-service/internal/domain"
)

type BoardRepo struct {
	db *sqlx.DB
}

func NewBoardRepo(db *sqlx.DB) *BoardRepo {
	return &BoardRepo{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching keyword literally.
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}

// List returns one page ordered by board_id plus the total match count.
func (r *BoardRepo) List(ctx context.Context, keyword string, limit, offset int) ([]domain.Board, int64, error) {
	where := ""
	args := []any{}
	if keyword != "" {
		where = ` WHERE name ILIKE $1 ESCAPE '\'`
		args = append(args, containsPattern(keyword))
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM boards`+where, args...); err != nil {
		return nil, 0, err
	}

	n := len(args)
	q := `SELECT board_id, name, description, created_at FROM boards` + where +
		` ORDER BY board_id ASC LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)
	args = append(args, limit, offset)

	var rows []boardRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, 0, err
	}

	out := make([]domain.Board, 0, len(rows))
	for _, br := range rows {
		out = append(out, br.toDomain())
	}
	return out, total, nil
}

// Count returns the number of stored boards.
func (r *BoardRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM boards`)
	return n, err
}

// Insert adds a board, trimming name and description. Duplicate names are
// reported as ErrDuplicateBoard.
func (r *BoardRepo) Insert(ctx context.Context, b domain.Board) (domain.Board, error) {
	const q = `
INSERT INTO boards (name, description)
VALUES ($1, $2)
RETURNING board_id, name, description, created_at;
`
	var br boardRow
	err := r.db.QueryRowxContext(ctx, q, strings.TrimSpace(b.Name), strings.TrimSpace(b.Description)).StructScan(&br)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Board{}, ErrDuplicateBoard
		}
		return domain.Board{}, err
	}
	return br.toDomain(), nil
}
