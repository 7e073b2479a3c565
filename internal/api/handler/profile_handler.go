package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/api/forms"
	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/service"
)

// Profile 公开主页：作者全部文章（含未发布）带评论数
func (h *Handler) Profile(c *gin.Context) {
	profile, pp, err := h.profiles.Profile(c.Request.Context(), c.Param("username"), pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.NotFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "profile.html", gin.H{"profile": profile, "page_obj": pp})
}

// EditProfile 只能编辑自己的资料
func (h *Handler) EditProfile(c *gin.Context) {
	actor := middleware.UserFrom(c)
	if c.Request.Method == http.MethodGet {
		form := forms.ProfileForm{
			Username:  actor.Username,
			FirstName: actor.FirstName,
			LastName:  actor.LastName,
			Email:     actor.Email,
		}
		h.render(c, http.StatusOK, "profile_form.html", gin.H{"form": form})
		return
	}
	var form forms.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "profile_form.html", gin.H{"form": form, "errors": forms.Errors(err)})
		return
	}
	updated, err := h.profiles.UpdateProfile(c.Request.Context(), actor, service.ProfileInput{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			h.render(c, http.StatusOK, "profile_form.html", gin.H{
				"form":   form,
				"errors": map[string]string{"username": "username already taken"},
			})
			return
		}
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(updated.Username))
}
