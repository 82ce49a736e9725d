// Package pagination computes page bounds for recipe listings and the
// window of page numbers a pager displays.
package pagination

import "math"

const (
	// DefaultPageSize is used when the client does not ask for a page size.
	DefaultPageSize = 12

	// MaxPageSize caps the number of recipes returned per page.
	MaxPageSize = 100

	// DefaultWindow is the number of page links shown by a pager.
	DefaultWindow = 5

	// MaxPage is the largest page whose offset fits in an int at MaxPageSize.
	MaxPage = math.MaxInt / MaxPageSize
)

// Normalize clamps page to [1, MaxPage] and pageSize to [1, MaxPageSize],
// replacing a non-positive pageSize with DefaultPageSize.
func Normalize(page, pageSize int) (int, int) {
	page = min(max(page, 1), MaxPage)
	switch {
	case pageSize < 1:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Offset returns the number of rows to skip for page (1-based). The result
// saturates instead of overflowing.
func Offset(page, pageSize int) int {
	if page < 1 || pageSize < 1 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt / pageSize * pageSize
	}
	return (page - 1) * pageSize
}

// TotalPages returns the number of pages needed for total rows.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Window returns the contiguous page numbers to display around current.
//
// The window holds at most maxVisible pages, always contains current
// (clamped to [1, totalPages]) and is centered on it unless it would run past
// either end, in which case it is shifted inward. An empty listing has an
// empty window.
func Window(current, totalPages, maxVisible int) []int {
	if totalPages <= 0 || maxVisible <= 0 {
		return []int{}
	}

	current = min(max(current, 1), totalPages)
	size := min(maxVisible, totalPages)

	start := current - (size-1)/2
	start = max(start, 1)
	start = min(start, totalPages-size+1)

	window := make([]int, size)
	for i := range window {
		window[i] = start + i
	}
	return window
}
