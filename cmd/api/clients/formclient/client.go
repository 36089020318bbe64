package formclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio/cmd/api/httpclient"
	"portfolio/config"
)

// Client는 문의 폼 내용을 외부 폼 릴레이(formsubmit 등)로 전달하는 클라이언트다.
// 릴레이 URL 은 폼의 action 주소 그대로이며 application/x-www-form-urlencoded 로 보낸다.
type Client struct {
	base *httpclient.BaseClient
}

const relayTimeout = 10 * time.Second

var ErrNotConfigured = errors.New("contact relay url is not configured")

// Submission 은 릴레이로 보내는 문의 한 건이다.
type Submission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (s Submission) values() url.Values {
	v := url.Values{}
	v.Set("name", s.Name)
	v.Set("email", s.Email)
	v.Set("subject", s.Subject)
	v.Set("message", s.Message)
	// formsubmit 은 _subject 를 메일 제목으로 쓴다.
	v.Set("_subject", s.Subject)
	return v
}

func New(cfg config.ContactConfig) *Client {
	c := &Client{}
	if cfg.RelayURL != "" {
		c.base = httpclient.NewBaseClient(cfg.RelayURL, httpclient.Config{Timeout: relayTimeout})
	}
	return c
}

// Enabled 는 릴레이 URL 이 설정되어 있는지 알려준다.
func (c *Client) Enabled() bool {
	return c.base != nil
}

// Submit 은 문의를 릴레이로 POST 한다. 리다이렉트를 따라간 최종 응답이 2xx 가 아니면 에러다.
func (c *Client) Submit(ctx context.Context, s Submission) error {
	if c.base == nil {
		return ErrNotConfigured
	}
	req, err := c.base.NewRequest(ctx, http.MethodPost, "", nil, strings.NewReader(s.values().Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("form relay Submit: status=%d body=%s", resp.StatusCode, httpclient.ReadErrorBody(resp))
	}
	return nil
}
