package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/cmd/api/clients/cmsclient"
	"portfolio/cmd/api/clients/formclient"
	"portfolio/cmd/api/content"
	"portfolio/cmd/api/dto"
	"portfolio/cmd/api/services"
	"portfolio/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newCMS 는 Strapi 흉내를 내는 테스트 서버다.
func newCMS(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/projects":
			_, _ = w.Write([]byte(`{"data":[
				{"id":1,"title":"React dashboard","date":"2024-01-01","category":"Web"},
				{"id":2,"title":"CLI","date":"2024-02-01","category":"Tools","featured":true}
			]}`))
		case r.URL.Path == "/api/projects/2":
			_, _ = w.Write([]byte(`{"data":{"id":2,"title":"CLI"}}`))
		case r.URL.Path == "/api/posts" && r.URL.Query().Get("filters[slug][$eq]") == "hello":
			_, _ = w.Write([]byte(`{"data":[{"id":5,"slug":"hello","title":"Hello","body":"text"}]}`))
		case r.URL.Path == "/api/posts" && r.URL.Query().Has("filters[slug][$eq]"):
			_, _ = w.Write([]byte(`{"data":[]}`))
		case r.URL.Path == "/api/posts":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.Error(w, `{"error":{"status":404}}`, http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newEngine(t *testing.T, relayURL string) *gin.Engine {
	t.Helper()
	cms := cmsclient.New(config.ContentAPIConfig{BaseURL: newCMS(t).URL + "/api"})
	norm := content.NewNormalizer("")
	projects := services.NewProjectService(cms, norm, 10)
	posts := services.NewPostService(cms, norm, 9)

	r := gin.New()
	r.GET("/health", HealthHandler(cms))
	r.GET("/projects", ListProjectsHandler(projects))
	r.GET("/projects/:id", GetProjectHandler(projects))
	r.GET("/posts", ListPostsHandler(posts))
	r.GET("/posts/:slug", GetPostHandler(posts))
	r.GET("/home", HomeHandler(services.NewHomeService(projects, posts, config.HomeConfig{RecentProjects: 2, FeaturedProjects: 4, LatestPosts: 3})))
	r.POST("/contact", ContactHandler(services.NewContactService(formclient.New(config.ContactConfig{RelayURL: relayURL}))))
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListProjects(t *testing.T) {
	r := newEngine(t, "")
	w := do(r, httptest.NewRequest(http.MethodGet, "/projects?category=Web", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out dto.ProjectListDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out.Items, 2)
	assert.Equal(t, []string{"All", "Tools", "Web"}, out.Categories)
	require.Len(t, out.CurrentPageItems, 1)
	assert.Equal(t, "React dashboard", out.CurrentPageItems[0].Title)
	assert.Equal(t, "Web", out.SelectedCategory)
	assert.Equal(t, content.PlaceholderImage, out.CurrentPageItems[0].ImageURL)
}

func TestListPostsFetchFailureRendersEmptyState(t *testing.T) {
	r := newEngine(t, "")
	w := do(r, httptest.NewRequest(http.MethodGet, "/posts?page=abc", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out dto.PostListDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Empty(t, out.CurrentPageItems)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 0, out.TotalPages)
	assert.Equal(t, "No blog posts available yet.", out.EmptyMessage)
	assert.Contains(t, w.Body.String(), `"current_page_items":[]`)
	assert.Contains(t, w.Body.String(), `"pagination":[]`)
}

func TestDetailEndpoints(t *testing.T) {
	r := newEngine(t, "")

	w := do(r, httptest.NewRequest(http.MethodGet, "/projects/2", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"CLI"`)

	w = do(r, httptest.NewRequest(http.MethodGet, "/projects/404", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/posts/hello", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"body":"text"`)

	w = do(r, httptest.NewRequest(http.MethodGet, "/posts/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHomeDegradesPosts(t *testing.T) {
	r := newEngine(t, "")
	w := do(r, httptest.NewRequest(http.MethodGet, "/home", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out dto.HomeDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.RecentProjects, 2)
	assert.Equal(t, "CLI", out.RecentProjects[0].Title)
	assert.Len(t, out.FeaturedProjects, 1)
	assert.Empty(t, out.LatestPosts)
}

func TestContactValidation(t *testing.T) {
	r := newEngine(t, "")

	tests := []struct {
		name string
		form url.Values
		want map[string]string
	}{
		{
			name: "all missing",
			form: url.Values{},
			want: map[string]string{
				"name":    "Name is required",
				"email":   "Email is required",
				"subject": "Subject is required",
				"message": "Message is required",
			},
		},
		{
			name: "bad email",
			form: url.Values{"name": {"Ada"}, "email": {"ada-at-example"}, "subject": {"Hi"}, "message": {"Hello"}},
			want: map[string]string{"email": "Invalid email format"},
		},
		{
			name: "blank name",
			form: url.Values{"name": {"   "}, "email": {"ada@example.dev"}, "subject": {"Hi"}, "message": {"Hello"}},
			want: map[string]string{"name": "Name is required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := do(r, req)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var out dto.ContactErrorDTO
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
			assert.Equal(t, "validation_failed", out.Error)
			assert.Equal(t, tt.want, out.Fields)
		})
	}
}

func TestContactRelay(t *testing.T) {
	body := `{"name":"Ada","email":"ada@example.dev","subject":"Hi","message":"Hello"}`

	t.Run("not configured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := do(newEngine(t, ""), req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("relay ok", func(t *testing.T) {
		relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer relay.Close()

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := do(newEngine(t, relay.URL), req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "message sent")
	})

	t.Run("relay failure", func(t *testing.T) {
		relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer relay.Close()

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := do(newEngine(t, relay.URL), req)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		w := do(newEngine(t, ""), req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_request")
	})
}

type stubChecker struct{ err error }

func (s stubChecker) Health(context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		api    string
	}{
		{"up", nil, http.StatusOK, "up"},
		{"not configured", cmsclient.ErrNotConfigured, http.StatusOK, "not_configured"},
		{"down", errors.New("cms Health: status=502"), http.StatusServiceUnavailable, "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", HealthHandler(stubChecker{err: tt.err}))
			w := do(r, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.status, w.Code)

			var out dto.HealthDTO
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
			assert.Equal(t, tt.api, out.ContentAPI)
		})
	}
}
