// Package pagination holds the page/offset arithmetic shared by list endpoints.
package pagination

import (
	"errors"
	"fmt"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 20

	// DefaultBasePath is the path used when rendering prev/next links.
	DefaultBasePath = "/movies/"
)

// ErrEmptyPage is returned by Build when the requested window holds no items,
// either because the collection is empty or the page lies past the last one.
var ErrEmptyPage = errors.New("pagination: empty page")

// Request is a 1-indexed page window.
type Request struct {
	Page    int `json:"page" validate:"gte=1"`
	PerPage int `json:"per_page" validate:"gte=1,lte=20"`
}

// DefaultRequest returns the window used when the caller omits both parameters.
func DefaultRequest() Request {
	return Request{Page: DefaultPage, PerPage: DefaultPerPage}
}

// Offset is the zero-based index of the first item in the page.
func (r Request) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// Limit is the maximum number of items in the page.
func (r Request) Limit() int {
	return r.PerPage
}

// Page carries one window of items plus the navigation metadata clients need.
type Page[T any] struct {
	Items      []T
	PrevPage   *string
	NextPage   *string
	TotalPages int
	TotalItems int
}

// TotalPages returns ceil(total / perPage).
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Link renders the relative URL of a page.
func Link(basePath string, page, perPage int) string {
	return fmt.Sprintf("%s?page=%d&per_page=%d", basePath, page, perPage)
}

// Build assembles a Page from the items fetched for req and the collection size.
func Build[T any](req Request, items []T, total int, basePath string) (Page[T], error) {
	if len(items) == 0 {
		return Page[T]{}, ErrEmptyPage
	}
	if basePath == "" {
		basePath = DefaultBasePath
	}

	page := Page[T]{
		Items:      items,
		TotalPages: TotalPages(total, req.PerPage),
		TotalItems: total,
	}
	if req.Page > 1 {
		prev := Link(basePath, req.Page-1, req.PerPage)
		page.PrevPage = &prev
	}
	if req.Offset()+len(items) < total {
		next := Link(basePath, req.Page+1, req.PerPage)
		page.NextPage = &next
	}
	return page, nil
}
