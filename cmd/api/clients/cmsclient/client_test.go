package cmsclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/config"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(config.ContentAPIConfig{BaseURL: srv.URL + "/api", FetchPageSize: 50})
}

func TestListCollectionRequestsSortedPopulatedCollection(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":1,"title":"A"},{"id":2,"title":"B"}],"meta":{"pagination":{"total":2}}}`))
	})

	items, err := c.ListCollection(context.Background(), ResourceProjects)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Title.String())

	assert.Equal(t, "/api/projects", gotPath)
	assert.Equal(t, []string{"date:desc"}, gotQuery["sort[0]"])
	assert.Equal(t, []string{"*"}, gotQuery["populate"])
	assert.Equal(t, []string{"50"}, gotQuery["pagination[pageSize]"])
}

func TestListCollectionErrors(t *testing.T) {
	t.Run("non-2xx", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		_, err := c.ListCollection(context.Background(), ResourcePosts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status=500")
	})

	t.Run("malformed json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[`))
		})
		_, err := c.ListCollection(context.Background(), ResourcePosts)
		assert.Error(t, err)
	})

	t.Run("network failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := New(config.ContentAPIConfig{BaseURL: srv.URL})
		_, err := c.ListCollection(context.Background(), ResourcePosts)
		assert.Error(t, err)
	})

	t.Run("not configured", func(t *testing.T) {
		c := New(config.ContentAPIConfig{})
		_, err := c.ListCollection(context.Background(), ResourcePosts)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestGetProject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/projects/42":
			_, _ = w.Write([]byte(`{"data":{"id":42,"title":"Answer"}}`))
		default:
			http.Error(w, `{"error":{"status":404}}`, http.StatusNotFound)
		}
	})

	item, err := c.GetProject(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Answer", item.Title.String())

	_, err = c.GetProject(context.Background(), "7")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.GetProject(context.Background(), "../admin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindPostBySlug(t *testing.T) {
	var gotFilter string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filters[slug][$eq]")
		if gotFilter == "hello-world" {
			_, _ = w.Write([]byte(`{"data":[{"id":1,"slug":"hello-world","title":"first"},{"id":2,"slug":"hello-world","title":"dup"}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	item, err := c.FindPostBySlug(context.Background(), "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "first", item.Title.String())
	assert.Equal(t, "hello-world", gotFilter)

	_, err = c.FindPostBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("pagination[pageSize]"))
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	assert.NoError(t, c.Health(context.Background()))

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	err := down.Health(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotConfigured))
}
