package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/cmd/api/trace"
)

func TestNewRequestJoinsPathAndQuery(t *testing.T) {
	c := NewBaseClient("https://cms.example.dev/api", Config{})

	q := url.Values{}
	q.Set("populate", "*")
	req, err := c.NewRequest(context.Background(), http.MethodGet, "/projects", q, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://cms.example.dev/api/projects?populate=%2A", req.URL.String())
}

func TestNewRequestRejectsQueryInPath(t *testing.T) {
	c := NewBaseClient("https://cms.example.dev/api", Config{})

	_, err := c.NewRequest(context.Background(), http.MethodGet, "/projects?populate=*", nil, nil)
	assert.Error(t, err)
}

func TestRoundTripPropagatesTraceHeaders(t *testing.T) {
	var gotRequestID, gotSpanID, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		gotSpanID = r.Header.Get("X-Span-Id")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL, Config{})
	ctx := trace.WithRequestAndSpan(context.Background(), "req-123", 0)

	req, err := c.NewRequest(ctx, http.MethodPost, "/echo", nil, strings.NewReader("name=ada"))
	require.NoError(t, err)
	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "req-123", gotRequestID)
	assert.Equal(t, "1", gotSpanID)
	assert.Equal(t, "name=ada", gotBody, "body must be restored after logging")
}

func TestReadErrorBodyIsBounded(t *testing.T) {
	resp := &http.Response{Body: io.NopCloser(strings.NewReader(strings.Repeat("x", 5000)))}
	assert.Len(t, ReadErrorBody(resp), 2048)
}
