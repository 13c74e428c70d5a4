package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

func NewPagination(page, pageSize int, totalItems int64, returned int) *Pagination {
	if page < 1 {
		page = 1
	}
	totalPages := totalItems / int64(pageSize)
	if totalItems%int64(pageSize) != 0 {
		totalPages++
	}
	from := 0
	if returned > 0 {
		from = (page-1)*pageSize + 1
	}
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         from + returned - 1,
	}
}
