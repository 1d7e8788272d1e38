// Package pagination implements the shared page-slicing contract: a
// possibly absent or garbage page parameter defaults to page 1, and
// out-of-range page numbers clamp to the nearest valid page instead of
// erroring.
package pagination

import "strconv"

// Page describes one page of an ordered collection.
type Page struct {
	Number      int   `json:"number"`
	Size        int   `json:"size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// New computes page metadata for a collection of totalItems entries.
// An empty collection still yields page 1 with zero items.
func New(number int, totalItems int64, size int) Page {
	totalPages := int((totalItems + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	// Clamp instead of erroring.
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:      number,
		Size:        size,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}

// FromParam parses a raw ?page= value; absent or invalid values mean page 1.
func FromParam(param string, totalItems int64, size int) Page {
	number, err := strconv.Atoi(param)
	if err != nil {
		number = 1
	}
	return New(number, totalItems, size)
}

// Offset is the number of items to skip to reach this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
