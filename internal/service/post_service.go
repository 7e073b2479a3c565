package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

// PostInput 经过表单校验的文章字段（作者由会话决定，不从表单取）
type PostInput struct {
	Title       string
	Text        string
	PubDate     time.Time
	IsPublished bool
	CategoryID  *string
	LocationID  *string
}

// PostPage 一页文章及其分页元数据
type PostPage struct {
	Posts []*model.Post
	Page  PageInfo
}

// FormChoices 文章表单的下拉选项（仅已发布的分类与地点）
type FormChoices struct {
	Categories []*model.Category
	Locations  []*model.Location
}

type PostService interface {
	// Index 公共首页：可见文章按发布时间倒序分页
	Index(ctx context.Context, page int) (*PostPage, error)
	// CategoryPosts 分类页：分类未发布或不存在返回 ErrNotFound
	CategoryPosts(ctx context.Context, slug string, page int) (*model.Category, *PostPage, error)
	// Detail 详情页：作者看自己的文章不受可见性约束，他人走过滤查询
	Detail(ctx context.Context, id string, actor *model.User) (*model.Post, []*model.Comment, error)
	// GetOwned 取文章并校验归属，编辑/删除入口使用
	GetOwned(ctx context.Context, id string, actor *model.User) (*model.Post, error)
	Create(ctx context.Context, actor *model.User, in PostInput) (*model.Post, error)
	Update(ctx context.Context, id string, actor *model.User, in PostInput) (*model.Post, error)
	Delete(ctx context.Context, id string, actor *model.User) error
	Choices(ctx context.Context) (*FormChoices, error)
}

type postService struct {
	posts      repository.PostRepository
	comments   repository.CommentRepository
	categories repository.CategoryRepository
	locations  repository.LocationRepository
	paginator  *Paginator
}

func NewPostService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	categories repository.CategoryRepository,
	locations repository.LocationRepository,
	paginator *Paginator,
) PostService {
	return &postService{
		posts:      posts,
		comments:   comments,
		categories: categories,
		locations:  locations,
		paginator:  paginator,
	}
}

func (s *postService) Index(ctx context.Context, page int) (*PostPage, error) {
	now := time.Now()
	total, err := s.posts.CountVisible(ctx, now)
	if err != nil {
		return nil, err
	}
	info := s.paginator.Resolve(total, page)
	items, err := s.posts.ListVisible(ctx, now, info.Offset(), info.Limit())
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: items, Page: info}, nil
}

func (s *postService) CategoryPosts(ctx context.Context, slug string, page int) (*model.Category, *PostPage, error) {
	category, err := s.categories.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, nil, notFoundOr(err)
	}
	now := time.Now()
	total, err := s.posts.CountVisibleByCategory(ctx, category.ID, now)
	if err != nil {
		return nil, nil, err
	}
	info := s.paginator.Resolve(total, page)
	items, err := s.posts.ListVisibleByCategory(ctx, category.ID, now, info.Offset(), info.Limit())
	if err != nil {
		return nil, nil, err
	}
	return category, &PostPage{Posts: items, Page: info}, nil
}

// Detail 两段式查找：先不过滤取文章；请求者不是作者时在可见集合内重查，
// 未命中按不存在处理。作者因此能预览未发布/未到期的文章，他人不能。
func (s *postService) Detail(ctx context.Context, id string, actor *model.User) (*model.Post, []*model.Comment, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, nil, notFoundOr(err)
	}
	if actor == nil || actor.ID != post.AuthorID {
		post, err = s.posts.GetVisibleByID(ctx, id, time.Now())
		if err != nil {
			return nil, nil, notFoundOr(err)
		}
	}
	comments, err := s.comments.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

func (s *postService) GetOwned(ctx context.Context, id string, actor *model.User) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if actor == nil || actor.ID != post.AuthorID {
		return nil, ErrNotOwner
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, actor *model.User, in PostInput) (*model.Post, error) {
	post := &model.Post{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Text:        in.Text,
		PubDate:     in.PubDate,
		IsPublished: in.IsPublished,
		AuthorID:    actor.ID,
		CategoryID:  in.CategoryID,
		LocationID:  in.LocationID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, id string, actor *model.User, in PostInput) (*model.Post, error) {
	post, err := s.GetOwned(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	post.Title = in.Title
	post.Text = in.Text
	post.PubDate = in.PubDate
	post.IsPublished = in.IsPublished
	post.CategoryID = in.CategoryID
	post.LocationID = in.LocationID
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id string, actor *model.User) error {
	post, err := s.GetOwned(ctx, id, actor)
	if err != nil {
		return err
	}
	return s.posts.Delete(ctx, post)
}

func (s *postService) Choices(ctx context.Context) (*FormChoices, error) {
	categories, err := s.categories.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.locations.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return &FormChoices{Categories: categories, Locations: locations}, nil
}
