package postgres

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/baechuer/board-service/internal/domain"
)

var ErrDuplicateBoard = errors.New("board name already exists")

type BoardSeeder interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, b domain.Board) (domain.Board, error)
}

// DevBoards are inserted into an empty boards table in the dev environment.
var DevBoards = []domain.Board{
	{Name: "Notice", Description: "Service announcements"},
	{Name: "Free", Description: "Talk about anything"},
}

// SeedBoards inserts DevBoards when the table is empty. It is restart safe.
func SeedBoards(ctx context.Context, repo BoardSeeder) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	inserted := 0
	for _, b := range DevBoards {
		if _, err := repo.Insert(ctx, b); err != nil {
			if errors.Is(err, ErrDuplicateBoard) {
				continue
			}
			return err
		}
		inserted++
	}

	log.Info().Int("boards", inserted).Msg("dev boards seeded")
	return nil
}
