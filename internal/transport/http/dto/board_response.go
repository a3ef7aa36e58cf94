package dto

import "github.com/baechuer/board-service/internal/domain"

type BoardItem struct {
	BoardID     int64  `json:"boardId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type BoardListResponse struct {
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Total    int64       `json:"total"`
	Items    []BoardItem `json:"items"`
}

func NewBoardListResponse(p domain.BoardPage) BoardListResponse {
	items := make([]BoardItem, 0, len(p.Items))
	for _, b := range p.Items {
		items = append(items, BoardItem{
			BoardID:     b.ID,
			Name:        b.Name,
			Description: b.Description,
		})
	}
	return BoardListResponse{
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    p.Total,
		Items:    items,
	}
}
