package middleware

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/pkg/logger"
)

// Recovery 捕获 panic：上报 Sentry（若已初始化）、记日志、渲染 500 页
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if hub := sentry.CurrentHub(); hub.Client() != nil {
					hub.RecoverWithContext(c.Request.Context(), r)
				}
				logger.Error("panic recovered",
					zap.Any("error", r),
					zap.String("path", c.Request.URL.Path),
				)
				c.HTML(http.StatusInternalServerError, "500.html", gin.H{
					"user": UserFrom(c),
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
