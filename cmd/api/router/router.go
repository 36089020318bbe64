package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"portfolio/cmd/api/clients/cmsclient"
	"portfolio/cmd/api/clients/formclient"
	"portfolio/cmd/api/content"
	"portfolio/cmd/api/handlers"
	"portfolio/cmd/api/middleware"
	"portfolio/cmd/api/services"
	"portfolio/config"
	_ "portfolio/docs"
)

// New 는 설정으로부터 클라이언트와 서비스를 조립해 gin 엔진을 만든다.
func New(cfg *config.AppConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	cms := cmsclient.New(cfg.ContentAPI)
	norm := content.NewNormalizer(cfg.ContentAPI.MediaBaseURL)

	// Health check
	r.GET("/health", handlers.HealthHandler(cms))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		projectsSvc := services.NewProjectService(cms, norm, cfg.Pagination.ProjectsPageSize)
		api.GET("/projects", handlers.ListProjectsHandler(projectsSvc))
		api.GET("/projects/:id", handlers.GetProjectHandler(projectsSvc))

		postsSvc := services.NewPostService(cms, norm, cfg.Pagination.PostsPageSize)
		api.GET("/posts", handlers.ListPostsHandler(postsSvc))
		api.GET("/posts/:slug", handlers.GetPostHandler(postsSvc))

		homeSvc := services.NewHomeService(projectsSvc, postsSvc, cfg.Home)
		api.GET("/home", handlers.HomeHandler(homeSvc))

		contactSvc := services.NewContactService(formclient.New(cfg.Contact))
		api.POST("/contact", handlers.ContactHandler(contactSvc))
	}

	return r
}
