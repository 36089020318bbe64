package cmsclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strconv"

	"portfolio/cmd/api/content"
	"portfolio/cmd/api/httpclient"
	"portfolio/config"
)

// Client는 헤드리스 CMS(Strapi) REST API를 호출하는 얇은 클라이언트다.
//
// - 응답은 content.RawItem 으로만 디코딩하고, 정규화/정렬은 호출하는 쪽이 맡는다.
// - 실패는 에러로 그대로 돌려준다. "데이터 없음"으로 접는 것은 services 계층의 몫이다.
//
// baseURL 예: https://cms.example.com/api
type Client struct {
	base          *httpclient.BaseClient
	fetchPageSize int
}

// Resource 는 CMS 컬렉션 이름이다.
type Resource string

const (
	ResourceProjects Resource = "projects"
	ResourcePosts    Resource = "posts"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrNotConfigured = errors.New("content api base url is not configured")
)

// id/slug 는 경로나 필터 값으로 그대로 들어가므로 URL-safe 문자만 허용한다.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// New 는 설정으로부터 클라이언트를 만든다. BaseURL 이 비어 있으면 모든 호출이
// 외부 요청 없이 ErrNotConfigured 를 반환한다.
func New(cfg config.ContentAPIConfig) *Client {
	c := &Client{fetchPageSize: cfg.FetchPageSize}
	if c.fetchPageSize <= 0 {
		c.fetchPageSize = config.DefaultFetchPageSize
	}
	if cfg.Enabled() {
		c.base = httpclient.NewBaseClient(cfg.BaseURL, httpclient.Config{Timeout: cfg.Timeout()})
	}
	return c
}

// ListCollection 은 GET /{resource} 를 호출해 컬렉션 전체를 date 내림차순으로 가져온다.
func (c *Client) ListCollection(ctx context.Context, resource Resource) ([]content.RawItem, error) {
	if c.base == nil {
		return nil, ErrNotConfigured
	}
	q := url.Values{}
	q.Set("sort[0]", "date:desc")
	q.Set("populate", "*")
	q.Set("pagination[pageSize]", strconv.Itoa(c.fetchPageSize))

	body, status, err := c.get(ctx, "/"+string(resource), q)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("cms ListCollection(%s): status=%d body=%s", resource, status, body)
	}
	items, err := content.DecodeCollection(body)
	if err != nil {
		return nil, fmt.Errorf("cms ListCollection(%s): %w", resource, err)
	}
	return items, nil
}

// GetProject 는 GET /projects/{id} 로 단일 프로젝트를 조회한다.
// 존재하지 않으면 ErrNotFound 를 반환한다.
func (c *Client) GetProject(ctx context.Context, id string) (content.RawItem, error) {
	if c.base == nil {
		return content.RawItem{}, ErrNotConfigured
	}
	if !identPattern.MatchString(id) {
		return content.RawItem{}, ErrNotFound
	}
	q := url.Values{}
	q.Set("populate", "*")

	body, status, err := c.get(ctx, path.Join("/", string(ResourceProjects), id), q)
	if err != nil {
		return content.RawItem{}, err
	}
	switch {
	case status == http.StatusNotFound:
		return content.RawItem{}, ErrNotFound
	case !isSuccess(status):
		return content.RawItem{}, fmt.Errorf("cms GetProject: status=%d body=%s", status, body)
	}
	return first(body, "GetProject")
}

// FindPostBySlug 는 GET /posts?filters[slug][$eq]={slug} 로 포스트를 찾는다.
// slug 가 중복되면 첫 번째 항목을 반환한다.
func (c *Client) FindPostBySlug(ctx context.Context, slug string) (content.RawItem, error) {
	if c.base == nil {
		return content.RawItem{}, ErrNotConfigured
	}
	if !identPattern.MatchString(slug) {
		return content.RawItem{}, ErrNotFound
	}
	q := url.Values{}
	q.Set("filters[slug][$eq]", slug)
	q.Set("populate", "*")

	body, status, err := c.get(ctx, "/"+string(ResourcePosts), q)
	if err != nil {
		return content.RawItem{}, err
	}
	if !isSuccess(status) {
		return content.RawItem{}, fmt.Errorf("cms FindPostBySlug: status=%d body=%s", status, body)
	}
	return first(body, "FindPostBySlug")
}

// Health 는 projects 컬렉션을 1건만 조회해 CMS 가 응답하는지 확인한다.
func (c *Client) Health(ctx context.Context) error {
	if c.base == nil {
		return ErrNotConfigured
	}
	q := url.Values{}
	q.Set("pagination[pageSize]", "1")

	body, status, err := c.get(ctx, "/"+string(ResourceProjects), q)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return fmt.Errorf("cms Health: status=%d body=%s", status, body)
	}
	return nil
}

// get 은 요청을 보내고 2xx 면 바디 전체를, 아니면 앞부분만 읽어 돌려준다.
func (c *Client) get(ctx context.Context, relPath string, q url.Values) ([]byte, int, error) {
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, q, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return []byte(httpclient.ReadErrorBody(resp)), resp.StatusCode, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func first(body []byte, op string) (content.RawItem, error) {
	items, err := content.DecodeCollection(body)
	if err != nil {
		return content.RawItem{}, fmt.Errorf("cms %s: %w", op, err)
	}
	if len(items) == 0 {
		return content.RawItem{}, ErrNotFound
	}
	return items[0], nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
