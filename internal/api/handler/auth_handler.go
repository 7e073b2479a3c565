package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/api/forms"
	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/service"
)

// Register 注册成功后引导到登录页
func (h *Handler) Register(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		h.render(c, http.StatusOK, "register.html", gin.H{"form": forms.RegisterForm{}})
		return
	}
	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "register.html", gin.H{"form": form, "errors": forms.Errors(err)})
		return
	}
	_, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			h.render(c, http.StatusOK, "register.html", gin.H{
				"form":   form,
				"errors": map[string]string{"username": "username already taken"},
			})
			return
		}
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/auth/login")
}

// Login 成功后写会话 cookie，支持 next 回跳
func (h *Handler) Login(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		h.render(c, http.StatusOK, "login.html", gin.H{"form": forms.LoginForm{}, "next": c.Query("next")})
		return
	}
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "login.html", gin.H{"form": form, "errors": forms.Errors(err)})
		return
	}
	user, err := h.auth.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.render(c, http.StatusOK, "login.html", gin.H{
				"form":   form,
				"errors": map[string]string{"__all__": "invalid username or password"},
			})
			return
		}
		h.serverError(c, err)
		return
	}
	token, err := h.sessions.Issue(user)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.SetCookie(middleware.SessionCookie, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
}

// safeNext 只接受站内路径。"//evil.com" 这类 protocol-relative 地址
// 浏览器会当成跨站跳转，必须落回首页。
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

// Logout 吊销令牌并清 cookie
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
			h.serverError(c, err)
			return
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
