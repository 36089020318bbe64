package content

import (
	"sort"
	"strings"
	"time"
)

// dateLayouts are tried in order. The CMS sends RFC 3339; the date-only and
// space separated forms come from hand-edited data files.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a publish date. ok is false for empty or unrecognized input.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// SortByDateDesc returns a copy of items ordered newest first.
// The sort is stable. Items without a parseable date keep their relative
// order and go after every dated item.
func SortByDateDesc[T Dated](items []T) []T {
	type keyed struct {
		item T
		at   time.Time
		ok   bool
	}
	keys := make([]keyed, len(items))
	for i, it := range items {
		at, ok := ParseDate(it.PublishedAt())
		keys[i] = keyed{item: it, at: at, ok: ok}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.ok != b.ok {
			return a.ok
		}
		if !a.ok {
			return false
		}
		return a.at.After(b.at)
	})

	out := make([]T, len(keys))
	for i, k := range keys {
		out[i] = k.item
	}
	return out
}
