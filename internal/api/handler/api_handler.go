package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

// postItem 对外的文章视图
type postItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	PubDate      time.Time `json:"pub_date"`
	Author       string    `json:"author"`
	Category     *string   `json:"category,omitempty"`
	Location     *string   `json:"location,omitempty"`
	CommentCount int64     `json:"comment_count"`
}

func toPostItem(p *model.Post) postItem {
	item := postItem{
		ID:           p.ID,
		Title:        p.Title,
		Text:         p.Text,
		PubDate:      p.PubDate,
		Author:       p.Author.Username,
		CommentCount: p.CommentCount,
	}
	if p.Category != nil {
		item.Category = &p.Category.Title
	}
	if p.Location != nil {
		item.Location = &p.Location.Name
	}
	return item
}

// APIListPosts 公开文章列表
// @Summary 文章列表（仅公开可见）
// @Tags 文章
// @Produce json
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 500 {object} response.Response
// @Router /api/v1/posts [get]
func (h *Handler) APIListPosts(c *gin.Context) {
	pp, err := h.posts.Index(c.Request.Context(), pageParam(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	items := make([]postItem, len(pp.Posts))
	for i, p := range pp.Posts {
		items[i] = toPostItem(p)
	}
	response.Success(c, gin.H{
		"page":        pp.Page.Number,
		"total_pages": pp.Page.TotalPages,
		"total":       pp.Page.Total,
		"list":        items,
	})
}

// APIGetPost 公开文章详情
// @Summary 文章详情（仅公开可见）
// @Tags 文章
// @Produce json
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response{data=handler.postItem}
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{id} [get]
func (h *Handler) APIGetPost(c *gin.Context) {
	// API 无会话，一律按匿名可见性处理
	post, _, err := h.posts.Detail(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, toPostItem(post))
}
