package board

import (
	"context"

	"github.com/baechuer/board-service/internal/domain"
)

// BoardRepo lists boards in store order (board_id ascending). An empty
// keyword means no filter; otherwise name is matched case-insensitively.
type BoardRepo interface {
	List(ctx context.Context, keyword string, limit, offset int) ([]domain.Board, int64, error)
}
