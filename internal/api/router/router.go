package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/gin-blog/config"
	_ "github.com/d60-Lab/gin-blog/docs"
	"github.com/d60-Lab/gin-blog/internal/api/handler"
	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/internal/service"
)

// New 装配路由与中间件。templatesGlob 指向页面模板，测试时可指到仓库根。
func New(
	cfg *config.Config,
	h *handler.Handler,
	sessions *service.SessionManager,
	users repository.UserRepository,
	templatesGlob string,
) *gin.Engine {
	gin.SetMode(ginMode(cfg.Server.Mode))
	r := gin.New()
	r.Use(middleware.RequestLog())
	r.Use(middleware.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(rate.Limit(50), 100))
	if cfg.Telemetry.Enabled {
		r.Use(otelgin.Middleware(cfg.Telemetry.Service))
	}
	r.Use(middleware.CurrentUser(sessions, users))
	r.LoadHTMLGlob(templatesGlob)

	r.GET("/", h.Index)
	r.GET("/category/:slug/", h.CategoryPosts)

	posts := r.Group("/posts")
	{
		posts.GET("/:id/", h.PostDetail)

		authed := posts.Group("", middleware.RequireLogin())
		authed.GET("/create/", h.CreatePost)
		authed.POST("/create/", h.CreatePost)
		authed.GET("/:id/edit/", h.EditPost)
		authed.POST("/:id/edit/", h.EditPost)
		authed.GET("/:id/delete/", h.DeletePost)
		authed.POST("/:id/delete/", h.DeletePost)
		authed.POST("/:id/comment/", h.AddComment)
		authed.GET("/:id/edit_comment/:cid/", h.EditComment)
		authed.POST("/:id/edit_comment/:cid/", h.EditComment)
		authed.GET("/:id/delete_comment/:cid/", h.DeleteComment)
		authed.POST("/:id/delete_comment/:cid/", h.DeleteComment)
	}

	profile := r.Group("/profile")
	{
		profile.GET("/edit/", middleware.RequireLogin(), h.EditProfile)
		profile.POST("/edit/", middleware.RequireLogin(), h.EditProfile)
		profile.GET("/:username/", h.Profile)
	}

	auth := r.Group("/auth")
	{
		auth.GET("/login", h.Login)
		auth.POST("/login", h.Login)
		auth.GET("/logout", h.Logout)
		auth.GET("/registration", h.Register)
		auth.POST("/registration", h.Register)
	}

	api := r.Group("/api/v1")
	{
		api.GET("/posts", h.APIListPosts)
		api.GET("/posts/:id", h.APIGetPost)
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(h.NotFound)
	return r
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
