package listview

// PageInfo mirrors the page metadata the backend returns for server-side
// paginated lists, so client-side slicing presents the same shape.
type PageInfo struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate slices a client-side page out of a derived view. Report screens
// layer this on top of server-paginated data via their page-size selector.
// Pages are 1-based; out-of-range pages return an empty slice.
func Paginate[T any](records []T, page, size int) ([]T, PageInfo) {
	if size <= 0 {
		size = 10
	}
	if page <= 0 {
		page = 1
	}

	total := len(records)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	info := PageInfo{
		Page:        page,
		PageSize:    size,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1 && page <= totalPages,
	}

	start := (page - 1) * size
	if start >= total {
		return []T{}, info
	}
	end := start + size
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, records[start:end])
	return out, info
}
