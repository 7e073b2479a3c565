package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/api/forms"
	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/service"
)

// AddComment 校验通过后入库并跳回详情页；空文本在详情页上重新渲染表单错误
func (h *Handler) AddComment(c *gin.Context) {
	actor := middleware.UserFrom(c)
	postID := c.Param("id")
	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		post, comments, derr := h.posts.Detail(c.Request.Context(), postID, actor)
		if derr != nil {
			if errors.Is(derr, service.ErrNotFound) {
				h.NotFound(c)
				return
			}
			h.serverError(c, derr)
			return
		}
		h.render(c, http.StatusOK, "detail.html", gin.H{
			"post":     post,
			"comments": comments,
			"form":     form,
			"errors":   forms.Errors(err),
		})
		return
	}
	if _, err := h.comments.Add(c.Request.Context(), postID, actor, form.Text); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.NotFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postDetailURL(postID))
}

// EditComment 归属校验先行；非作者静默跳回详情页
func (h *Handler) EditComment(c *gin.Context) {
	actor := middleware.UserFrom(c)
	postID := c.Param("id")
	comment, err := h.comments.GetOwned(c.Request.Context(), c.Param("cid"), actor)
	if err != nil {
		h.ownershipFailure(c, err, postID)
		return
	}
	if c.Request.Method == http.MethodGet {
		h.render(c, http.StatusOK, "comment.html", gin.H{
			"comment": comment,
			"post_id": postID,
			"form":    forms.CommentForm{Text: comment.Text},
		})
		return
	}
	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "comment.html", gin.H{
			"comment": comment,
			"post_id": postID,
			"form":    form,
			"errors":  forms.Errors(err),
		})
		return
	}
	if _, err := h.comments.Update(c.Request.Context(), comment.ID, actor, form.Text); err != nil {
		h.ownershipFailure(c, err, postID)
		return
	}
	c.Redirect(http.StatusFound, postDetailURL(postID))
}

// DeleteComment GET 确认页，POST 删除后跳回详情页
func (h *Handler) DeleteComment(c *gin.Context) {
	actor := middleware.UserFrom(c)
	postID := c.Param("id")
	comment, err := h.comments.GetOwned(c.Request.Context(), c.Param("cid"), actor)
	if err != nil {
		h.ownershipFailure(c, err, postID)
		return
	}
	if c.Request.Method == http.MethodGet {
		h.render(c, http.StatusOK, "comment.html", gin.H{
			"comment": comment,
			"post_id": postID,
			"delete":  true,
		})
		return
	}
	if err := h.comments.Delete(c.Request.Context(), comment.ID, actor); err != nil {
		h.ownershipFailure(c, err, postID)
		return
	}
	c.Redirect(http.StatusFound, postDetailURL(postID))
}
