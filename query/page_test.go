package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	req := PageRequest{Page: -3, Size: 0}.Normalize()
	assert.Equal(t, 0, req.Page)
	assert.Equal(t, DefaultPageSize, req.Size)

	req = PageRequest{Page: 2, Size: 25}.Normalize()
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 25, req.Size)
	assert.Equal(t, 50, req.Offset())
}

func TestNewPageTotals(t *testing.T) {
	req := PageRequest{Page: 0, Size: 10}

	page := NewPage([]int{1, 2, 3}, 25, req)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)

	page = NewPage([]int{}, 30, req)
	assert.Equal(t, 3, page.TotalPages)

	page = NewPage[int](nil, 0, req)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestEmptyPageAdvisory(t *testing.T) {
	page := EmptyPage[int](PageRequest{Page: 4, Size: 10}, "keyword must be a number")
	assert.Empty(t, page.Items)
	assert.Equal(t, 4, page.Page)
	assert.Equal(t, "keyword must be a number", page.Advisory)
	assert.Zero(t, page.TotalElements)
}
