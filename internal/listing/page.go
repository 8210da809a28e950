// Package listing implements filtered, ordered and paginated reads shared by
// every back-office and catalog listing.
package listing

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest is a normalised, 1-based page selection.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Limits bounds page sizes. The zero value falls back to the package defaults.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
}

func (l Limits) normalized() Limits {
	if l.DefaultPageSize <= 0 {
		l.DefaultPageSize = DefaultPageSize
	}
	if l.MaxPageSize <= 0 {
		l.MaxPageSize = MaxPageSize
	}
	if l.DefaultPageSize > l.MaxPageSize {
		l.DefaultPageSize = l.MaxPageSize
	}
	return l
}

// Request builds a PageRequest: page below 1 becomes 1, a missing size takes
// the default and an oversized one is capped. Page is clamped so that its
// offset always fits in an int.
func (l Limits) Request(page, pageSize int) PageRequest {
	l = l.normalized()
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = l.DefaultPageSize
	}
	if pageSize > l.MaxPageSize {
		pageSize = l.MaxPageSize
	}
	if last := math.MaxInt / pageSize; page > last {
		page = last
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

// Offset is the number of rows before the page. It saturates at math.MaxInt
// instead of wrapping.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// TotalPages is ceil(total/size), and 0 for an empty result.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Page is one slice of an ordered result plus the totals of the whole match.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalItems: total,
		TotalPages: TotalPages(total, req.PageSize),
	}
}

// Slice pages an already filtered and ordered result held in memory.
func Slice[T any](all []T, req PageRequest) Page[T] {
	total := int64(len(all))
	start := req.Offset()
	if start < 0 || start > len(all) {
		start = len(all)
	}
	end := len(all)
	if req.PageSize > 0 && req.PageSize < end-start {
		end = start + req.PageSize
	}
	items := make([]T, end-start)
	copy(items, all[start:end])
	return NewPage(items, req, total)
}

// Map converts page items while keeping the totals.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Items))
	for i, it := range p.Items {
		out[i] = fn(it)
	}
	return Page[U]{
		Items:      out,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}
