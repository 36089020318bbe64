package content

import "strings"

// CategoryAll is the category option that disables category filtering.
const CategoryAll = "All"

// Filter is a predicate over list items.
type Filter[T any] func(T) bool

// ByCategory matches projects in the given category. CategoryAll matches
// everything; the empty label matches uncategorized projects.
func ByCategory(category string) Filter[Project] {
	if category == CategoryAll {
		return nil
	}
	return func(p Project) bool { return p.Category == category }
}

// ByText matches items whose search fields contain query, ignoring case.
// An empty query matches everything.
func ByText[T Searchable](query string) Filter[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(item T) bool {
		for _, field := range item.SearchFields() {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
}

// Apply returns the items matching f in their original order.
// A nil filter matches everything. The result is never nil and never shares
// its backing array with items.
func Apply[T any](items []T, f Filter[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f == nil || f(item) {
			out = append(out, item)
		}
	}
	return out
}

// Categories returns the category options for a project collection:
// CategoryAll followed by each distinct category in first-appearance order.
// Uncategorized projects contribute the empty label once.
func Categories(projects []Project) []string {
	seen := make(map[string]struct{}, len(projects))
	out := []string{CategoryAll}
	for _, p := range projects {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// FilterByCategory keeps projects in category, or all of them for CategoryAll.
func FilterByCategory(projects []Project, category string) []Project {
	return Apply(projects, ByCategory(category))
}

// Search keeps items whose title or summary contains query, ignoring case.
func Search[T Searchable](items []T, query string) []T {
	return Apply(items, ByText[T](query))
}

// Featured keeps projects flagged as featured.
func Featured(projects []Project) []Project {
	return Apply(projects, Filter[Project](func(p Project) bool { return p.Featured }))
}

// Latest returns a copy of the first n items. n <= 0 yields an empty slice.
func Latest[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
