package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// 환경변수 키. 프론트엔드 빌드에서 쓰던 API URL 을 그대로 서버 설정으로 옮겨온다.
const (
	EnvContentAPIURL   = "CONTENT_API_URL"
	EnvContentMediaURL = "CONTENT_MEDIA_URL"
	EnvContactRelayURL = "CONTACT_RELAY_URL"
	EnvLogLevel        = "LOG_LEVEL"
	EnvPort            = "PORT"
	EnvServiceName     = "SERVICE_NAME"
)

// 기본값. 페이지 크기는 목록 종류별로 다르다 (프로젝트 10, 블로그 9).
const (
	DefaultAddr             = ":8080"
	DefaultServiceName      = "portfolio-api"
	DefaultLogLevel         = "info"
	DefaultFetchPageSize    = 100
	DefaultProjectsPageSize = 10
	DefaultPostsPageSize    = 9
	DefaultRecentProjects   = 2
	DefaultFeaturedProjects = 4
	DefaultLatestPosts      = 3
)

var (
	ErrInvalidContentAPIURL = errors.New("content_api.base_url must be an absolute http(s) URL")
	ErrInvalidMediaURL      = errors.New("content_api.media_base_url must be an absolute http(s) URL")
	ErrInvalidRelayURL      = errors.New("contact.relay_url must be an absolute http(s) URL")
	ErrInvalidTimeout       = errors.New("content_api.timeout_sec must be non-negative")
	ErrInvalidFetchSize     = errors.New("content_api.fetch_page_size must be at least 1")
	ErrInvalidPageSize      = errors.New("pagination page sizes must be at least 1")
	ErrInvalidHomeLimit     = errors.New("home limits must be non-negative")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
)

type AppConfig struct {
	ServiceName string           `yaml:"service_name"`
	Server      ServerConfig     `yaml:"server"`
	Logging     LoggingConfig    `yaml:"logging"`
	ContentAPI  ContentAPIConfig `yaml:"content_api"`
	Pagination  PaginationConfig `yaml:"pagination"`
	Home        HomeConfig       `yaml:"home"`
	Contact     ContactConfig    `yaml:"contact"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// AllowedOrigins 가 비어 있으면 모든 origin 을 허용한다.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ContentAPIConfig 는 헤드리스 CMS(Strapi) 접속 설정이다.
// BaseURL 이 비어 있으면 외부 호출 없이 빈 목록으로 동작한다.
type ContentAPIConfig struct {
	BaseURL string `yaml:"base_url"`

	// MediaBaseURL 은 상대 경로 이미지 URL 앞에 붙일 미디어 호스트다.
	MediaBaseURL string `yaml:"media_base_url"`

	// TimeoutSec 가 0 이면 http.Client 기본값(타임아웃 없음)을 따른다.
	TimeoutSec int `yaml:"timeout_sec"`

	// FetchPageSize 는 컬렉션 전체를 한 번에 받기 위한 CMS 측 page size 다.
	FetchPageSize int `yaml:"fetch_page_size"`
}

type PaginationConfig struct {
	ProjectsPageSize int `yaml:"projects_page_size"`
	PostsPageSize    int `yaml:"posts_page_size"`
}

// HomeConfig 는 랜딩 페이지 섹션별 항목 수다. 0 이면 해당 섹션은 비어 있다.
type HomeConfig struct {
	RecentProjects   int `yaml:"recent_projects"`
	FeaturedProjects int `yaml:"featured_projects"`
	LatestPosts      int `yaml:"latest_posts"`
}

func DefaultHomeConfig() HomeConfig {
	return HomeConfig{
		RecentProjects:   DefaultRecentProjects,
		FeaturedProjects: DefaultFeaturedProjects,
		LatestPosts:      DefaultLatestPosts,
	}
}

type ContactConfig struct {
	RelayURL string `yaml:"relay_url"`
}

// Load 는 dir 아래의 .env 와 config.yaml 을 읽어 AppConfig 를 만든다.
// config.yaml 이 없으면 기본값과 환경변수만으로 구성한다.
func Load(dir string) (*AppConfig, error) {
	// .env 는 선택 사항이다.
	_ = godotenv.Load(filepath.Join(dir, ENV_FILE))

	// home 한도는 0 이 "섹션 끄기"이므로, 키가 없을 때만 기본값이 남도록 미리 채워 둔다.
	c := AppConfig{Home: DefaultHomeConfig()}
	data, err := os.ReadFile(filepath.Join(dir, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", CONFIG_FILE, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", CONFIG_FILE, err)
	}

	c.applyEnv()
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &c, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv(EnvContentAPIURL); v != "" {
		c.ContentAPI.BaseURL = v
	}
	if v := os.Getenv(EnvContentMediaURL); v != "" {
		c.ContentAPI.MediaBaseURL = v
	}
	if v := os.Getenv(EnvContactRelayURL); v != "" {
		c.Contact.RelayURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		c.Server.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	if v := os.Getenv(EnvServiceName); v != "" {
		c.ServiceName = v
	}
}

func (c *AppConfig) applyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.ContentAPI.BaseURL = strings.TrimRight(strings.TrimSpace(c.ContentAPI.BaseURL), "/")
	c.ContentAPI.MediaBaseURL = strings.TrimRight(strings.TrimSpace(c.ContentAPI.MediaBaseURL), "/")
	if c.ContentAPI.MediaBaseURL == "" {
		c.ContentAPI.MediaBaseURL = mediaHostOf(c.ContentAPI.BaseURL)
	}
	if c.ContentAPI.FetchPageSize == 0 {
		c.ContentAPI.FetchPageSize = DefaultFetchPageSize
	}
	if c.Pagination.ProjectsPageSize == 0 {
		c.Pagination.ProjectsPageSize = DefaultProjectsPageSize
	}
	if c.Pagination.PostsPageSize == 0 {
		c.Pagination.PostsPageSize = DefaultPostsPageSize
	}
}

// mediaHostOf 는 Strapi API URL(예: https://cms.example.com/api)에서
// 업로드 파일이 서빙되는 호스트(https://cms.example.com)를 추출한다.
func mediaHostOf(apiURL string) string {
	if apiURL == "" {
		return ""
	}
	u, err := url.Parse(apiURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// Validate validates the configuration.
func (c *AppConfig) Validate() error {
	if c.ContentAPI.BaseURL != "" && !isHTTPURL(c.ContentAPI.BaseURL) {
		return ErrInvalidContentAPIURL
	}
	if c.ContentAPI.MediaBaseURL != "" && !isHTTPURL(c.ContentAPI.MediaBaseURL) {
		return ErrInvalidMediaURL
	}
	if c.Contact.RelayURL != "" && !isHTTPURL(c.Contact.RelayURL) {
		return ErrInvalidRelayURL
	}
	if c.ContentAPI.TimeoutSec < 0 {
		return ErrInvalidTimeout
	}
	if c.ContentAPI.FetchPageSize < 1 {
		return ErrInvalidFetchSize
	}
	if c.Pagination.ProjectsPageSize < 1 || c.Pagination.PostsPageSize < 1 {
		return ErrInvalidPageSize
	}
	if c.Home.RecentProjects < 0 || c.Home.FeaturedProjects < 0 || c.Home.LatestPosts < 0 {
		return ErrInvalidHomeLimit
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}
	return nil
}

// Timeout returns the outbound timeout for CMS calls. Zero means no timeout.
func (c ContentAPIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// Enabled reports whether a CMS endpoint is configured.
func (c ContentAPIConfig) Enabled() bool {
	return c.BaseURL != ""
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
