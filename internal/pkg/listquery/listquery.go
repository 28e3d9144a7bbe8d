// Package listquery implements the list-screen behaviors shared by every
// collection endpoint: case-insensitive substring search, field sorting and
// 1-based pagination.
package listquery

import (
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Params carries the query options common to list endpoints
type Params struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ParseParams builds Params from raw query values, applying defaults
func ParseParams(search, sortBy, sortOrder, page, pageSize string) Params {
	p := Params{
		Search:    strings.TrimSpace(search),
		SortBy:    strings.TrimSpace(sortBy),
		SortOrder: OrderAsc,
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
	}
	if strings.EqualFold(sortOrder, OrderDesc) {
		p.SortOrder = OrderDesc
	}
	if n, err := strconv.Atoi(page); err == nil && n >= 1 {
		p.Page = n
	}
	if n, err := strconv.Atoi(pageSize); err == nil && n >= 1 {
		if n > MaxPageSize {
			n = MaxPageSize
		}
		p.PageSize = n
	}
	return p
}

// Matches reports whether any of the fields contains search,
// case-insensitively. An empty search matches everything.
func Matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Filter returns the items for which pred holds, preserving order
func Filter[T any](items []T, pred func(T) bool) []T {
	out := []T{}
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Sort orders items with the given ascending comparator, reversed when
// order is desc. The sort is stable so equal items keep collection order.
func Sort[T any](items []T, order string, less func(a, b T) bool) {
	if less == nil {
		return
	}
	if order == OrderDesc {
		sort.SliceStable(items, func(i, j int) bool { return less(items[j], items[i]) })
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

// CompareStrings is a case-insensitive ascending string comparator
func CompareStrings(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// PageInfo describes one page of a larger result set
type PageInfo struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
}

// Paginate slices items down to the requested 1-based page
func Paginate[T any](items []T, page, size int) ([]T, PageInfo) {
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return items[start:end], PageInfo{
		CurrentPage: page,
		PageSize:    size,
		TotalItems:  total,
		TotalPages:  totalPages,
	}
}
