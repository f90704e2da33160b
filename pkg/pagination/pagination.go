package pagination

type Page[T any] struct {
	Items       []T  `json:"items"`
	PageNumber  int  `json:"page_number"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate slices items into a fixed-size page. Out-of-range page numbers are
// clamped rather than rejected: anything below 1 becomes the first page,
// anything past the end becomes the last page. An empty sequence yields
// page 1 with no items.
func Paginate[T any](items []T, pageSize int, page int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start > totalItems {
		start = totalItems
	}
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Items:       items[start:end],
		PageNumber:  page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
