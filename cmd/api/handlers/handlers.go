package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/content"
	"portfolio/cmd/api/dto"
	"portfolio/cmd/api/services"
)

// ListProjectsHandler godoc
// @Summary      List projects
// @Description  Newest-first projects with category filter and pagination.
// @Description  Omitting category selects "All"; an empty category selects uncategorized projects.
// @Tags         projects
// @Param        category  query  string  false  "Category label (default All)"
// @Param        page      query  int     false  "Page number (1-based)"
// @Produce      json
// @Success      200  {object}  dto.ProjectListDTO
// @Router       /projects [get]
func ListProjectsHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := content.ParseProjectQuery(c.Request.URL.Query())
		c.JSON(http.StatusOK, svc.List(c.Request.Context(), q))
	}
}

// GetProjectHandler godoc
// @Summary      Get project by id
// @Description  Get a single project by CMS id
// @Tags         projects
// @Param        id   path   string  true  "Project id"
// @Produce      json
// @Success      200  {object}  dto.ProjectDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /projects/{id} [get]
func GetProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

// ListPostsHandler godoc
// @Summary      List blog posts
// @Description  Newest-first posts with case-insensitive search over title and excerpt
// @Tags         posts
// @Param        q     query  string  false  "Search text"
// @Param        page  query  int     false  "Page number (1-based)"
// @Produce      json
// @Success      200  {object}  dto.PostListDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := content.ParsePostQuery(c.Request.URL.Query())
		c.JSON(http.StatusOK, svc.List(c.Request.Context(), q))
	}
}

// GetPostHandler godoc
// @Summary      Get post by slug
// @Description  Get a single blog post including its body
// @Tags         posts
// @Param        slug  path   string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// HomeHandler godoc
// @Summary      Landing page summary
// @Description  Most recent projects, featured projects and latest posts
// @Tags         home
// @Produce      json
// @Success      200  {object}  dto.HomeDTO
// @Router       /home [get]
func HomeHandler(svc *services.HomeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Get(c.Request.Context()))
	}
}
