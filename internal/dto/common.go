package dto

// PaginationParams are the shared page/limit query parameters. The
// defaults apply when the keys are absent; an explicit zero fails the
// min bound instead of slipping past validation.
type PaginationParams struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

// Offset converts the 1-based page into a row offset.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PaginationResponse echoes the applied paging plus totals.
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPaginationResponse derives the page count from the total. Limit is
// clamped to at least one so an unvalidated caller cannot divide by
// zero.
func NewPaginationResponse(page, limit int, total int64) PaginationResponse {
	if limit < 1 {
		limit = 1
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return PaginationResponse{Page: page, Limit: limit, Total: total, Pages: pages}
}
