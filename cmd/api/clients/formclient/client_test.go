package formclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/config"
)

func TestSubmitPostsFormEncodedFields(t *testing.T) {
	var got map[string]string
	var contentType, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		got = map[string]string{
			"name":    r.PostForm.Get("name"),
			"email":   r.PostForm.Get("email"),
			"subject": r.PostForm.Get("subject"),
			"message": r.PostForm.Get("message"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(config.ContactConfig{RelayURL: srv.URL + "/me@example.dev"})
	require.True(t, c.Enabled())

	err := c.Submit(context.Background(), Submission{
		Name: "Ada", Email: "ada@example.dev", Subject: "Hi", Message: "Hello & welcome",
	})
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
	assert.Equal(t, "/me@example.dev", gotPath)
	assert.Equal(t, map[string]string{
		"name": "Ada", "email": "ada@example.dev", "subject": "Hi", "message": "Hello & welcome",
	}, got)
}

func TestSubmitRelayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(config.ContactConfig{RelayURL: srv.URL})
	err := c.Submit(context.Background(), Submission{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=429")
}

func TestSubmitNotConfigured(t *testing.T) {
	c := New(config.ContactConfig{})
	assert.False(t, c.Enabled())
	assert.ErrorIs(t, c.Submit(context.Background(), Submission{}), ErrNotConfigured)
}
