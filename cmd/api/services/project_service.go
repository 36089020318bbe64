package services

import (
	"context"

	"portfolio/cmd/api/clients/cmsclient"
	"portfolio/cmd/api/content"
	"portfolio/cmd/api/dto"
)

// ProjectsPath 는 프로젝트 목록 링크의 기준 경로다.
const ProjectsPath = "/api/v1/projects"

const msgNoProjects = "No projects found."

// ProjectService encapsulates the projects list pipeline and DTO mapping.
//
// - src: CMS 에서 원본 컬렉션을 가져온다. 실패는 빈 목록으로 접힌다.
// - listing: 정규화, 날짜 정렬, 카테고리 필터, 페이지네이션을 수행한다.
type ProjectService struct {
	src     ContentSource
	norm    *content.Normalizer
	listing content.Listing[content.Project]
}

func NewProjectService(src ContentSource, norm *content.Normalizer, pageSize int) *ProjectService {
	return &ProjectService{
		src:     src,
		norm:    norm,
		listing: content.Listing[content.Project]{Normalize: norm.Project, PageSize: pageSize},
	}
}

// Load 는 요청마다 컬렉션을 새로 가져와 최신순으로 정렬한다. 데이터가 없으면 nil 이다.
func (s *ProjectService) Load(ctx context.Context) []content.Project {
	return s.listing.Load(fetchCollection(ctx, s.src, cmsclient.ResourceProjects))
}

// List returns one page of projects for the given category.
func (s *ProjectService) List(ctx context.Context, q content.ProjectQuery) dto.ProjectListDTO {
	items := s.Load(ctx)
	categories := content.Categories(items)
	page := s.listing.Query(items, content.ByCategory(q.Category), q.Page)

	links := make([]dto.FilterLinkDTO, 0, len(categories))
	for _, l := range q.CategoryLinks(categories) {
		links = append(links, dto.FilterLinkDTO{
			Category: l.Category,
			Href:     href(ProjectsPath, l.Query),
			Selected: l.Selected,
		})
	}

	out := dto.ProjectListDTO{
		Items:            mapProjects(items),
		Categories:       categories,
		CurrentPageItems: mapProjects(page.Items),
		SelectedCategory: q.Category,
		CategoryLinks:    links,
		PageInfoDTO:      pageInfo(ProjectsPath, page, q.PageLinks(page.TotalPages)),
	}
	if page.Total == 0 {
		out.EmptyMessage = msgNoProjects
	}
	return out
}

// Get loads a single project by CMS id.
func (s *ProjectService) Get(ctx context.Context, id string) (*dto.ProjectDTO, error) {
	raw, err := fetchOne(ctx, "GetProject", id, s.src.GetProject)
	if err != nil {
		return nil, err
	}
	d := mapProject(s.norm.Project(raw))
	return &d, nil
}
