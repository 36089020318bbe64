package services

import (
	"context"

	"portfolio/cmd/api/clients/cmsclient"
	"portfolio/cmd/api/content"
	"portfolio/cmd/api/dto"
)

// PostsPath 는 블로그 목록 링크의 기준 경로다.
const PostsPath = "/api/v1/posts"

const (
	msgNoPostsMatch = "No blog posts found matching your search."
	msgNoPostsYet   = "No blog posts available yet."
)

// PostService encapsulates the blog list pipeline and DTO mapping.
type PostService struct {
	src     ContentSource
	norm    *content.Normalizer
	listing content.Listing[content.Post]
}

func NewPostService(src ContentSource, norm *content.Normalizer, pageSize int) *PostService {
	return &PostService{
		src:     src,
		norm:    norm,
		listing: content.Listing[content.Post]{Normalize: norm.Post, PageSize: pageSize},
	}
}

// Load 는 요청마다 컬렉션을 새로 가져와 최신순으로 정렬한다. 데이터가 없으면 nil 이다.
func (s *PostService) Load(ctx context.Context) []content.Post {
	return s.listing.Load(fetchCollection(ctx, s.src, cmsclient.ResourcePosts))
}

// List returns one page of posts matching the search text.
func (s *PostService) List(ctx context.Context, q content.PostQuery) dto.PostListDTO {
	items := s.Load(ctx)
	page := s.listing.Query(items, content.ByText[content.Post](q.Search), q.Page)

	out := dto.PostListDTO{
		CurrentPageItems: mapPosts(page.Items),
		Search:           q.Search,
		PageInfoDTO:      pageInfo(PostsPath, page, q.PageLinks(page.TotalPages)),
	}
	if page.Total == 0 {
		out.EmptyMessage = msgNoPostsYet
		if q.Search != "" {
			out.EmptyMessage = msgNoPostsMatch
		}
	}
	return out
}

// GetBySlug loads a single post, body included. Duplicate slugs resolve to
// the first match.
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*dto.PostDTO, error) {
	raw, err := fetchOne(ctx, "FindPostBySlug", slug, s.src.FindPostBySlug)
	if err != nil {
		return nil, err
	}
	p := s.norm.Post(raw)
	d := mapPost(p)
	d.Body = p.Body
	return &d, nil
}
