package domain

import "time"

type Board struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// BoardPage is one page of a board listing. Total counts every matching row.
type BoardPage struct {
	Items    []Board
	Page     int
	PageSize int
	Total    int64
}
