package httpx

import (
	"net/url"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps (page-1)*pageSize far from integer overflow.
	MaxPage = 100000
)

// Page is the paging window parsed from ?page= and ?page_size=.
type Page struct {
	Number int
	Size   int
}

// ParsePage reads page and page_size, falling back to page 1 and the default
// size for missing or out of range values. Pages past MaxPage are clamped.
func ParsePage(query url.Values) Page {
	number, err := strconv.Atoi(query.Get("page"))
	if err != nil || number < 1 {
		number = 1
	}
	if number > MaxPage {
		number = MaxPage
	}
	size, err := strconv.Atoi(query.Get("page_size"))
	if err != nil || size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Meta is the paging block of a list response.
func (p Page) Meta(total int) map[string]any {
	return map[string]any{
		"page":        p.Number,
		"page_size":   p.Size,
		"total":       total,
		"total_pages": (total + p.Size - 1) / p.Size,
	}
}
