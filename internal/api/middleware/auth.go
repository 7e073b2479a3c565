package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/internal/service"
)

// SessionCookie 会话 cookie 名
const SessionCookie = "session"

const currentUserKey = "currentUser"

// CurrentUser 解析会话 cookie 并把登录用户放进请求上下文。
// cookie 缺失或会话失效按匿名处理，不中断请求。
func CurrentUser(sessions *service.SessionManager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		userID, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}
		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.Next()
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// UserFrom 取当前登录用户，匿名返回 nil
func UserFrom(c *gin.Context) *model.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*model.User); ok {
			return u
		}
	}
	return nil
}

// RequireLogin 匿名用户重定向到登录页，携带回跳地址
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) == nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/auth/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}
