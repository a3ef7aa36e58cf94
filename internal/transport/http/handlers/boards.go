package http_handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/baechuer/board-service/internal/application/board"
	"github.com/baechuer/board-service/internal/domain"
	"github.com/baechuer/board-service/internal/transport/http/dto"
	"github.com/baechuer/board-service/internal/transport/http/response"
)

type BoardService interface {
	List(ctx context.Context, q board.ListQuery) (domain.BoardPage, error)
}

type BoardHandler struct {
	svc BoardService
}

func NewBoardHandler(svc BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// List handles GET /boards?page=&pageSize=&keyword=
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), q)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewBoardListResponse(page))
}

// parseListQuery applies the defaults for absent parameters. A value that is
// not an integer fails the same way an out-of-range one does.
func parseListQuery(r *http.Request) (board.ListQuery, error) {
	v := r.URL.Query()
	q := board.ListQuery{
		Page:     board.DefaultPage,
		PageSize: board.DefaultPageSize,
		Keyword:  v.Get("keyword"),
	}

	if s := strings.TrimSpace(v.Get("page")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return board.ListQuery{}, domain.ErrPageInvalid()
		}
		q.Page = n
	}
	if s := strings.TrimSpace(v.Get("pageSize")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return board.ListQuery{}, domain.ErrPageSizeInvalid()
		}
		q.PageSize = n
	}
	return q, nil
}
