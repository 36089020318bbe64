package services

import (
	"context"
	"errors"

	"portfolio/cmd/api/clients/cmsclient"
	"portfolio/cmd/api/content"
	"portfolio/cmd/api/dto"
	"portfolio/cmd/api/trace"
	"portfolio/cmd/internal/logger"
)

// ErrNotFound 는 상세 조회 대상이 없거나 CMS 에서 가져올 수 없을 때 반환된다.
var ErrNotFound = errors.New("content not found")

// ContentSource 는 services 가 CMS 에 기대하는 동작이다. *cmsclient.Client 가 구현한다.
type ContentSource interface {
	ListCollection(ctx context.Context, resource cmsclient.Resource) ([]content.RawItem, error)
	GetProject(ctx context.Context, id string) (content.RawItem, error)
	FindPostBySlug(ctx context.Context, slug string) (content.RawItem, error)
}

// fetchCollection 은 목록 조회의 경계다. 네트워크 오류, 비정상 상태 코드, 깨진 JSON 은
// 모두 로그만 남기고 nil(데이터 없음)로 접는다. 호출자는 에러를 볼 일이 없다.
func fetchCollection(ctx context.Context, src ContentSource, resource cmsclient.Resource) []content.RawItem {
	items, err := src.ListCollection(ctx, resource)
	if err != nil {
		logFetchError(ctx, "content collection fetch failed", err, logger.Fields{"resource": string(resource)})
		return nil
	}
	return items
}

// fetchOne 은 상세 조회의 경계다. 어떤 실패든 ErrNotFound 로 바꾼다.
func fetchOne(ctx context.Context, op string, key string, fn func(context.Context, string) (content.RawItem, error)) (content.RawItem, error) {
	raw, err := fn(ctx, key)
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, cmsclient.ErrNotFound) {
		logFetchError(ctx, "content item fetch failed", err, logger.Fields{"op": op, "key": key})
	}
	return content.RawItem{}, ErrNotFound
}

func logFetchError(ctx context.Context, msg string, err error, fields logger.Fields) {
	fields["error"] = err.Error()
	fields["request_id"] = trace.RequestIDFromContext(ctx)
	if errors.Is(err, cmsclient.ErrNotConfigured) {
		logger.DebugWithFields(msg, fields)
		return
	}
	logger.WarnWithFields(msg, fields)
}

func pageLinks(basePath string, links []content.PageLink) []dto.PageLinkDTO {
	out := make([]dto.PageLinkDTO, 0, len(links))
	for _, l := range links {
		out = append(out, dto.PageLinkDTO{
			Page:    l.Page,
			Href:    href(basePath, l.Query),
			Current: l.Current,
		})
	}
	return out
}

// href 는 목록 경로에 인코딩된 쿼리를 붙인다.
func href(basePath, query string) string {
	if query == "" {
		return basePath
	}
	return basePath + "?" + query
}

func pageInfo[T any](basePath string, p content.Page[T], links []content.PageLink) dto.PageInfoDTO {
	return dto.PageInfoDTO{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Pagination: pageLinks(basePath, links),
	}
}

func mapProject(p content.Project) dto.ProjectDTO {
	return dto.ProjectDTO{
		ID:          p.ID,
		DocumentID:  p.DocumentID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.Image,
		URL:         p.URL,
		PublishedAt: p.Date,
		Category:    p.Category,
		Featured:    p.Featured,
	}
}

func mapProjects(items []content.Project) []dto.ProjectDTO {
	out := make([]dto.ProjectDTO, 0, len(items))
	for _, p := range items {
		out = append(out, mapProject(p))
	}
	return out
}

// mapPost 는 목록용 DTO 를 만든다. 본문은 상세 조회에서만 채운다.
func mapPost(p content.Post) dto.PostDTO {
	return dto.PostDTO{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Author:      p.Author,
		ImageURL:    p.Image,
		PublishedAt: p.Date,
	}
}

func mapPosts(items []content.Post) []dto.PostDTO {
	out := make([]dto.PostDTO, 0, len(items))
	for _, p := range items {
		out = append(out, mapPost(p))
	}
	return out
}
