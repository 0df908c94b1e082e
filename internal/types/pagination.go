package types

// PaginationResponse represents standardized pagination metadata
type PaginationResponse struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ListResponse represents a paginated response with items
type ListResponse[T any] struct {
	Items      []T                `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

// PageRequest selects a window of a listing. A zero limit means no limit.
type PageRequest struct {
	Limit  int `json:"limit" form:"limit" validate:"gte=0,lte=1000"`
	Offset int `json:"offset" form:"offset" validate:"gte=0"`
}

// NewListResponse creates a new list response with pagination
func NewListResponse[T any](items []T, total, limit, offset int) ListResponse[T] {
	return ListResponse[T]{
		Items: items,
		Pagination: PaginationResponse{
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	}
}

// Paginate returns the page of items selected by page together with the
// pagination metadata. Items keep their order.
func Paginate[T any](items []T, page PageRequest) ListResponse[T] {
	total := len(items)
	start := min(max(page.Offset, 0), total)
	end := total
	if page.Limit > 0 {
		end = min(start+page.Limit, total)
	}
	window := make([]T, end-start)
	copy(window, items[start:end])
	return NewListResponse(window, total, page.Limit, page.Offset)
}
