// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, memory) inside this directory.
// Lookups that find nothing return a nil record and a nil error.
package repository

import "math"

// PageQuery holds page number/size pagination parameters, passed through to the store as-is.
type PageQuery struct {
	Number int
	Size   int
}

// DefaultPage is used when a caller supplies no paging parameters.
var DefaultPage = PageQuery{Number: 1, Size: 50}

// Offset returns the number of rows to skip. Non-positive values are clamped to the first page,
// offsets past math.MaxInt saturate.
func (p PageQuery) Offset() int {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// Limit returns the page size clamped to at least one row.
func (p PageQuery) Limit() int {
	if p.Size < 1 {
		return 1
	}
	return p.Size
}
