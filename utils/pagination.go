package utils

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

const DefaultPage = 1

type PageOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

// RegistrationPageOpts: 15 rows per page, at most 100.
var RegistrationPageOpts = PageOptions{DefaultPerPage: 15, MaxPerPage: 100}

// ListQuery is the parsed page/filter/sort state of a list request.
type ListQuery struct {
	Page      int
	PerPage   int
	Search    string
	Field     string
	Direction string // asc|desc
}

// ParseListQuery reads page, per_page, search, field and direction.
// Unknown directions fall back to defaultDirection; the field is validated
// later against a whitelist by OrderColumn.
func ParseListQuery(r *http.Request, defaultField, defaultDirection string, opt PageOptions) ListQuery {
	q := r.URL.Query()

	page := atoiDefault(q.Get("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	per := atoiDefault(q.Get("per_page"), opt.DefaultPerPage)
	if per < 1 {
		per = opt.DefaultPerPage
	}
	if opt.MaxPerPage > 0 && per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}

	field := strings.TrimSpace(q.Get("field"))
	if field == "" {
		field = defaultField
	}

	dir := strings.ToLower(strings.TrimSpace(q.Get("direction")))
	if dir != "asc" && dir != "desc" {
		dir = strings.ToLower(defaultDirection)
		if dir != "asc" && dir != "desc" {
			dir = "desc"
		}
	}

	return ListQuery{
		Page:      page,
		PerPage:   per,
		Search:    strings.TrimSpace(q.Get("search")),
		Field:     field,
		Direction: dir,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func (q ListQuery) Limit() int  { return q.PerPage }
func (q ListQuery) Offset() int { return (q.Page - 1) * q.PerPage }

// OrderColumn resolves Field against allowed (public name -> SQL column).
// An unknown field resolves to defaultKey; the returned key is the one used.
func (q ListQuery) OrderColumn(allowed map[string]string, defaultKey string) (key, column string) {
	if col, ok := allowed[q.Field]; ok {
		return q.Field, col
	}
	return defaultKey, allowed[defaultKey]
}

// Filters is echoed back to the page so it can keep its search box state.
type Filters struct {
	Search    string `json:"search"`
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func BuildMeta(total int64, q ListQuery) Meta {
	totalPages := 0
	if total > 0 && q.PerPage > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(q.PerPage)))
	}
	return Meta{
		Page:       q.Page,
		PerPage:    q.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    q.Page > 1,
		HasNext:    totalPages > 0 && q.Page < totalPages,
	}
}
