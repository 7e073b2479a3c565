package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/logger"
)

// Handler 聚合各页面处理器的依赖
type Handler struct {
	posts    service.PostService
	comments service.CommentService
	profiles service.ProfileService
	auth     service.AuthService
	sessions *service.SessionManager
}

func New(
	posts service.PostService,
	comments service.CommentService,
	profiles service.ProfileService,
	auth service.AuthService,
	sessions *service.SessionManager,
) *Handler {
	return &Handler{
		posts:    posts,
		comments: comments,
		profiles: profiles,
		auth:     auth,
		sessions: sessions,
	}
}

// render 统一注入当前用户后渲染模板
func (h *Handler) render(c *gin.Context, status int, name string, ctx gin.H) {
	if ctx == nil {
		ctx = gin.H{}
	}
	ctx["user"] = middleware.UserFrom(c)
	c.HTML(status, name, ctx)
}

// NotFound 统一 404 页。缺失与被可见性过滤对外不区分。
func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", nil)
}

func (h *Handler) serverError(c *gin.Context, err error) {
	logger.Error("handler error", zap.Error(err), zap.String("path", c.Request.URL.Path))
	h.render(c, http.StatusInternalServerError, "500.html", nil)
}

func postDetailURL(id string) string { return "/posts/" + id + "/" }

func profileURL(username string) string { return "/profile/" + username + "/" }
