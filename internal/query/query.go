// Package query builds the filtered, paginated reads behind every list view:
// a free-text term matched case-insensitively against a fixed set of columns
// per entity, and fixed-size pages in a stable order.
package query

import (
	"fmt"
	"math"
	"strings"
)

// DefaultPageSize is the number of records on every list page.
const DefaultPageSize = 5

// MaxPageSize caps internal batch readers such as exports.
const MaxPageSize = 500

// Filter is the input of a list read.
type Filter struct {
	Term     string
	Page     int
	PageSize int
}

// Normalize trims the term and fills page defaults. Page numbers below one
// become one; a zero page size means DefaultPageSize. Page is capped so that
// Page*PageSize, and with it every offset, fits in an int.
func (f Filter) Normalize() Filter {
	f.Term = strings.TrimSpace(f.Term)
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	if maxPage := math.MaxInt / f.PageSize; f.Page > maxPage {
		f.Page = maxPage
	}
	return f
}

// Offset is the number of rows skipped before the current page.
func (f Filter) Offset() int {
	n := f.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Limit is the page size after defaults.
func (f Filter) Limit() int {
	return f.Normalize().PageSize
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search renders an OR of case-insensitive substring matches over columns.
// argPos is the placeholder number the pattern binds to. An empty term
// yields an empty clause and no argument.
func Search(term string, argPos int, columns ...string) (string, []interface{}) {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return "", nil
	}
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf(`LOWER(%s) LIKE $%d ESCAPE '\'`, col, argPos)
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	return "(" + strings.Join(parts, " OR ") + ")", []interface{}{pattern}
}

// Where prefixes a non-empty clause with WHERE.
func Where(clause string) string {
	if clause == "" {
		return ""
	}
	return " WHERE " + clause
}

// Matches reports whether term is a case-insensitive substring of any field.
// An empty term matches everything.
func Matches(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
