package content

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names shared by the list endpoints and the links they emit.
const (
	ParamCategory = "category"
	ParamSearch   = "q"
	ParamPage     = "page"
)

// ProjectQuery is the serializable state of the projects list page.
//
// An absent category parameter selects CategoryAll. A present but empty one
// selects the uncategorized bucket.
type ProjectQuery struct {
	Category string
	Page     int
}

// PostQuery is the serializable state of the blog list page.
type PostQuery struct {
	Search string
	Page   int
}

// PageLink points at one page of the current list.
type PageLink struct {
	Page    int
	Query   string
	Current bool
}

// CategoryLink points at the first page of one category.
type CategoryLink struct {
	Category string
	Query    string
	Selected bool
}

func NewProjectQuery() ProjectQuery { return ProjectQuery{Category: CategoryAll, Page: 1} }

func NewPostQuery() PostQuery { return PostQuery{Page: 1} }

// ParseProjectQuery reads the query state from URL values.
func ParseProjectQuery(v url.Values) ProjectQuery {
	q := NewProjectQuery()
	if values, ok := v[ParamCategory]; ok && len(values) > 0 {
		q.Category = strings.TrimSpace(values[0])
	}
	q.Page = parsePage(v.Get(ParamPage))
	return q
}

// ParsePostQuery reads the query state from URL values.
func ParsePostQuery(v url.Values) PostQuery {
	return PostQuery{
		Search: strings.TrimSpace(v.Get(ParamSearch)),
		Page:   parsePage(v.Get(ParamPage)),
	}
}

// parsePage maps missing, malformed and non-positive values to 1.
func parsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Encode serializes the state. Defaults (CategoryAll, page 1) are omitted.
func (q ProjectQuery) Encode() url.Values {
	v := url.Values{}
	if q.Category != CategoryAll {
		v.Set(ParamCategory, q.Category)
	}
	if q.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(q.Page))
	}
	return v
}

// Encode serializes the state. An empty search and page 1 are omitted.
func (q PostQuery) Encode() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set(ParamSearch, q.Search)
	}
	if q.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(q.Page))
	}
	return v
}

// WithCategory selects a category. Changing the category resets to page 1.
func (q ProjectQuery) WithCategory(category string) ProjectQuery {
	if category != q.Category {
		q.Category = category
		q.Page = 1
	}
	return q
}

// WithPage moves to page n, keeping the category.
func (q ProjectQuery) WithPage(n int) ProjectQuery {
	q.Page = n
	return q
}

// WithSearch sets the search text. Changing the text resets to page 1.
func (q PostQuery) WithSearch(search string) PostQuery {
	search = strings.TrimSpace(search)
	if search != q.Search {
		q.Search = search
		q.Page = 1
	}
	return q
}

// WithPage moves to page n, keeping the search text.
func (q PostQuery) WithPage(n int) PostQuery {
	q.Page = n
	return q
}

// PageLinks returns one link per page, or nil when totalPages <= 1.
func (q ProjectQuery) PageLinks(totalPages int) []PageLink {
	return buildPageLinks(totalPages, q.Page, func(n int) url.Values { return q.WithPage(n).Encode() })
}

// CategoryLinks returns one link per category option. Following a link
// always lands on page 1.
func (q ProjectQuery) CategoryLinks(categories []string) []CategoryLink {
	out := make([]CategoryLink, 0, len(categories))
	for _, c := range categories {
		next := q.WithCategory(c)
		next.Page = 1
		out = append(out, CategoryLink{
			Category: c,
			Query:    next.Encode().Encode(),
			Selected: c == q.Category,
		})
	}
	return out
}

// PageLinks returns one link per page, or nil when totalPages <= 1.
func (q PostQuery) PageLinks(totalPages int) []PageLink {
	return buildPageLinks(totalPages, q.Page, func(n int) url.Values { return q.WithPage(n).Encode() })
}

func buildPageLinks(totalPages, current int, encode func(int) url.Values) []PageLink {
	pages := pageNumbers(totalPages)
	if pages == nil {
		return nil
	}
	out := make([]PageLink, 0, len(pages))
	for _, n := range pages {
		out = append(out, PageLink{
			Page:    n,
			Query:   encode(n).Encode(),
			Current: n == current,
		})
	}
	return out
}
