package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"portfolio/cmd/api/content"
	"portfolio/cmd/api/dto"
	"portfolio/config"
)

// HomeService 는 랜딩 페이지 요약을 만든다.
// 두 컬렉션은 동시에 가져오며, 한쪽이 실패해도 다른 쪽은 그대로 채워진다.
type HomeService struct {
	projects *ProjectService
	posts    *PostService
	limits   config.HomeConfig
}

func NewHomeService(projects *ProjectService, posts *PostService, limits config.HomeConfig) *HomeService {
	return &HomeService{projects: projects, posts: posts, limits: limits}
}

func (s *HomeService) Get(ctx context.Context) dto.HomeDTO {
	var (
		projects []content.Project
		posts    []content.Post
	)
	// fetch 경계에서 에러가 접히므로 고루틴은 항상 nil 을 반환한다.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		projects = s.projects.Load(gctx)
		return nil
	})
	g.Go(func() error {
		posts = s.posts.Load(gctx)
		return nil
	})
	_ = g.Wait()

	return dto.HomeDTO{
		RecentProjects:   mapProjects(content.Latest(projects, s.limits.RecentProjects)),
		FeaturedProjects: mapProjects(content.Latest(content.Featured(projects), s.limits.FeaturedProjects)),
		LatestPosts:      mapPosts(content.Latest(posts, s.limits.LatestPosts)),
	}
}
