package httpx

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantNumber int
		wantSize   int
	}{
		{"defaults", "", 1, DefaultPageSize},
		{"explicit", "page=3&page_size=10", 3, 10},
		{"negative page", "page=-4", 1, DefaultPageSize},
		{"garbage", "page=abc&page_size=xyz", 1, DefaultPageSize},
		{"oversized page size", "page_size=1000", 1, DefaultPageSize},
		{"huge page is clamped", "page=9223372036854775807&page_size=100", MaxPage, 100},
		{"page past int range", "page=99999999999999999999", 1, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.raw)
			assert.NoError(t, err)

			p := ParsePage(query)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantSize, p.Size)
			assert.GreaterOrEqual(t, p.Offset(), 0)
		})
	}
}

func TestPage_Meta(t *testing.T) {
	meta := Page{Number: 2, Size: 10}.Meta(21)

	assert.Equal(t, 2, meta["page"])
	assert.Equal(t, 10, meta["page_size"])
	assert.Equal(t, 21, meta["total"])
	assert.Equal(t, 3, meta["total_pages"])
}
