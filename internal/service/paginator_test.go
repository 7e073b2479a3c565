package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatorResolve(t *testing.T) {
	p := NewPaginator(10)

	info := p.Resolve(25, 2)
	assert.Equal(t, 2, info.Number)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 10, info.Offset())
	assert.Equal(t, 10, info.Limit())
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrev)
}

func TestPaginatorClampsBeyondLastPage(t *testing.T) {
	p := NewPaginator(10)
	info := p.Resolve(25, 99)
	assert.Equal(t, 3, info.Number)
	assert.False(t, info.HasNext)
	assert.True(t, info.HasPrev)
	assert.Equal(t, 20, info.Offset())
}

func TestPaginatorClampsNonPositivePage(t *testing.T) {
	p := NewPaginator(10)
	// strconv 解析失败得 0，也落到第一页
	for _, requested := range []int{0, -5} {
		info := p.Resolve(25, requested)
		assert.Equal(t, 1, info.Number)
		assert.False(t, info.HasPrev)
	}
}

func TestPaginatorEmptyResultIsSinglePage(t *testing.T) {
	p := NewPaginator(10)
	info := p.Resolve(0, 1)
	assert.Equal(t, 1, info.Number)
	assert.Equal(t, 1, info.TotalPages)
	assert.False(t, info.HasNext)
	assert.False(t, info.HasPrev)
}

func TestPaginatorExactBoundary(t *testing.T) {
	p := NewPaginator(10)
	info := p.Resolve(30, 3)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 3, info.Number)
	assert.False(t, info.HasNext)
}

func TestPaginatorBadPageSizeFallsBack(t *testing.T) {
	p := NewPaginator(0)
	info := p.Resolve(5, 1)
	assert.Equal(t, 10, info.PageSize)
}
