package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/api/forms"
	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/service"
)

func pageParam(c *gin.Context) int {
	// 解析失败得 0，分页器钳回第一页
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return page
}

// Index 首页：可见文章倒序分页
func (h *Handler) Index(c *gin.Context) {
	pp, err := h.posts.Index(c.Request.Context(), pageParam(c))
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "index.html", gin.H{"page_obj": pp})
}

// CategoryPosts 分类页：未发布或不存在的分类整页 404
func (h *Handler) CategoryPosts(c *gin.Context) {
	category, pp, err := h.posts.CategoryPosts(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.NotFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "category.html", gin.H{"category": category, "page_obj": pp})
}

// PostDetail 详情页，作者可预览自己未发布/未到期的文章
func (h *Handler) PostDetail(c *gin.Context) {
	actor := middleware.UserFrom(c)
	post, comments, err := h.posts.Detail(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.NotFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "detail.html", gin.H{
		"post":     post,
		"comments": comments,
		"form":     forms.CommentForm{},
		"errors":   nil,
	})
}

// CreatePost GET 渲染空表单，POST 校验入库后跳转作者主页
func (h *Handler) CreatePost(c *gin.Context) {
	actor := middleware.UserFrom(c)
	choices, err := h.posts.Choices(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	if c.Request.Method == http.MethodGet {
		form := forms.PostForm{
			PubDate:     time.Now().Format("2006-01-02T15:04"),
			IsPublished: true,
		}
		h.render(c, http.StatusOK, "post_form.html", gin.H{"form": form, "choices": choices})
		return
	}
	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "post_form.html", gin.H{
			"form": form, "choices": choices, "errors": forms.Errors(err),
		})
		return
	}
	in, fieldErrs := form.ToInput()
	if fieldErrs != nil {
		h.render(c, http.StatusOK, "post_form.html", gin.H{
			"form": form, "choices": choices, "errors": fieldErrs,
		})
		return
	}
	if _, err := h.posts.Create(c.Request.Context(), actor, in); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(actor.Username))
}

// EditPost 归属校验在表单流程之前；非作者静默跳回详情页
func (h *Handler) EditPost(c *gin.Context) {
	actor := middleware.UserFrom(c)
	id := c.Param("id")
	post, err := h.posts.GetOwned(c.Request.Context(), id, actor)
	if err != nil {
		h.ownershipFailure(c, err, id)
		return
	}
	choices, err := h.posts.Choices(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	if c.Request.Method == http.MethodGet {
		form := forms.FromPost(post.Title, post.Text, post.PubDate, post.IsPublished, post.CategoryID, post.LocationID)
		h.render(c, http.StatusOK, "post_form.html", gin.H{"form": form, "choices": choices, "post": post})
		return
	}
	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "post_form.html", gin.H{
			"form": form, "choices": choices, "post": post, "errors": forms.Errors(err),
		})
		return
	}
	in, fieldErrs := form.ToInput()
	if fieldErrs != nil {
		h.render(c, http.StatusOK, "post_form.html", gin.H{
			"form": form, "choices": choices, "post": post, "errors": fieldErrs,
		})
		return
	}
	if _, err := h.posts.Update(c.Request.Context(), id, actor, in); err != nil {
		h.ownershipFailure(c, err, id)
		return
	}
	c.Redirect(http.StatusFound, postDetailURL(id))
}

// DeletePost GET 确认页，POST 删除后回首页
func (h *Handler) DeletePost(c *gin.Context) {
	actor := middleware.UserFrom(c)
	id := c.Param("id")
	post, err := h.posts.GetOwned(c.Request.Context(), id, actor)
	if err != nil {
		h.ownershipFailure(c, err, id)
		return
	}
	if c.Request.Method == http.MethodGet {
		h.render(c, http.StatusOK, "post_delete.html", gin.H{"post": post})
		return
	}
	if err := h.posts.Delete(c.Request.Context(), id, actor); err != nil {
		h.ownershipFailure(c, err, id)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ownershipFailure 非作者的修改请求一律重定向到详情页，不渲染错误页
func (h *Handler) ownershipFailure(c *gin.Context, err error, postID string) {
	switch {
	case errors.Is(err, service.ErrNotOwner):
		c.Redirect(http.StatusFound, postDetailURL(postID))
	case errors.Is(err, service.ErrNotFound):
		h.NotFound(c)
	default:
		h.serverError(c, err)
	}
}
