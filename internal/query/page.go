package query

import (
	"math"
	"strconv"
	"strings"

	"humspot-backend/internal/apperror"
)

// PageSize is the number of rows every paginated endpoint returns.
const PageSize = 10

// Page is a 1-based page number. Values below 1 are never constructed by ParsePage,
// which keeps Offset non-negative.
type Page int

// ParsePage parses a raw page parameter.
func ParsePage(raw string) (Page, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > math.MaxInt/PageSize {
		return 0, apperror.ValidationFailed("page", "page must be a positive integer")
	}
	return Page(n), nil
}

// Offset returns the zero-based row offset of the page.
func (p Page) Offset() int {
	return (int(p) - 1) * PageSize
}

// Limit returns the number of rows in a page.
func (p Page) Limit() int {
	return PageSize
}
