package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func postIDs(posts []Post) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{
		"2024-03-01T12:30:00.000Z",
		"2024-03-01T12:30:00+09:00",
		"2024-03-01T12:30:00",
		"2024-03-01 12:30:00",
		"2024-03-01",
	} {
		_, ok := ParseDate(s)
		assert.True(t, ok, s)
	}

	for _, s := range []string{"", "  ", "yesterday", "03/01/2024"} {
		_, ok := ParseDate(s)
		assert.False(t, ok, s)
	}
}

func TestSortByDateDesc(t *testing.T) {
	in := []Post{
		{ID: "a", Date: "2024-01-01"},
		{ID: "bad1", Date: "not a date"},
		{ID: "b", Date: "2024-03-01"},
		{ID: "none"},
		{ID: "c", Date: "2024-02-01T00:00:00Z"},
	}

	out := SortByDateDesc(in)
	assert.Equal(t, []string{"b", "c", "a", "bad1", "none"}, postIDs(out))
	assert.Equal(t, "a", in[0].ID, "input must not be reordered")
}

func TestSortIsStableForEqualDates(t *testing.T) {
	in := []Post{
		{ID: "1", Date: "2024-01-01"},
		{ID: "2", Date: "2024-01-01"},
		{ID: "3", Date: "2024-01-01"},
	}
	assert.Equal(t, []string{"1", "2", "3"}, postIDs(SortByDateDesc(in)))
}

func TestSortIsIdempotent(t *testing.T) {
	in := []Post{
		{ID: "x", Date: "2022-06-01"},
		{ID: "y"},
		{ID: "z", Date: "2025-01-01"},
		{ID: "w", Date: "2022-06-01"},
	}
	once := SortByDateDesc(in)
	assert.Equal(t, once, SortByDateDesc(once))
}

func TestSortEmpty(t *testing.T) {
	assert.Empty(t, SortByDateDesc([]Project{}))
	assert.Empty(t, SortByDateDesc[Project](nil))
}
