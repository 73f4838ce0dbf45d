// Package query bounds and orders listings: page requests, page results
// and the closed set of post search filters.
package query

const DefaultPageSize = 10

// PageRequest is a zero-based page index plus a page size.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps a raw request into valid bounds: negative pages
// become 0, non-positive sizes fall back to DefaultPageSize.
func (r PageRequest) Normalize() PageRequest {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size < 1 {
		r.Size = DefaultPageSize
	}
	return r
}

// Offset is the row offset for this request.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Page is a bounded, ordered slice of a larger result set plus the
// counts needed to render pagination. Advisory carries a user-facing
// note for requests that are answerable but degenerate, such as a
// non-numeric keyword in an ID search.
type Page[T any] struct {
	Items         []T    `json:"items"`
	TotalElements int64  `json:"total_elements"`
	TotalPages    int    `json:"total_pages"`
	Page          int    `json:"page"`
	Advisory      string `json:"advisory,omitempty"`
}

func NewPage[T any](items []T, total int64, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:         items,
		TotalElements: total,
		TotalPages:    totalPages(total, req.Size),
		Page:          req.Page,
	}
}

// EmptyPage returns a page with no items and an advisory message.
func EmptyPage[T any](req PageRequest, advisory string) Page[T] {
	return Page[T]{
		Items:    []T{},
		Page:     req.Page,
		Advisory: advisory,
	}
}

func totalPages(total int64, size int) int {
	if size < 1 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
