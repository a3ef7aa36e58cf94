package board

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/baechuer/board-service/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxKeywordLen   = 50
)

type ListQuery struct {
	Page     int
	PageSize int
	Keyword  string
}

// Normalize trims the keyword and checks the bounds. Nothing is clamped:
// out-of-range values are rejected. A page whose offset does not fit in an
// int is out of range.
func (q *ListQuery) Normalize() error {
	if q.Page < 1 {
		return domain.ErrPageInvalid()
	}
	if q.PageSize < 1 || q.PageSize > MaxPageSize {
		return domain.ErrPageSizeInvalid()
	}
	if q.Page-1 > math.MaxInt/q.PageSize {
		return domain.ErrPageInvalid()
	}
	q.Keyword = strings.TrimSpace(q.Keyword)
	if utf8.RuneCountInString(q.Keyword) > MaxKeywordLen {
		return domain.ErrKeywordInvalid()
	}
	return nil
}

type Service struct {
	boards BoardRepo
}

func NewService(boards BoardRepo) *Service {
	return &Service{boards: boards}
}

func (s *Service) List(ctx context.Context, q ListQuery) (domain.BoardPage, error) {
	if err := q.Normalize(); err != nil {
		return domain.BoardPage{}, err
	}

	offset := (q.Page - 1) * q.PageSize
	items, total, err := s.boards.List(ctx, q.Keyword, q.PageSize, offset)
	if err != nil {
		return domain.BoardPage{}, domain.ErrDBUnavailable(err)
	}
	if items == nil {
		items = []domain.Board{}
	}

	return domain.BoardPage{
		Items:    items,
		Page:     q.Page,
		PageSize: q.PageSize,
		Total:    total,
	}, nil
}
