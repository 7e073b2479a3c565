package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

type CommentService interface {
	// Add 任何登录用户都可以在存在的文章下评论
	Add(ctx context.Context, postID string, actor *model.User, text string) (*model.Comment, error)
	// GetOwned 取评论并校验归属
	GetOwned(ctx context.Context, id string, actor *model.User) (*model.Comment, error)
	Update(ctx context.Context, id string, actor *model.User, text string) (*model.Comment, error)
	Delete(ctx context.Context, id string, actor *model.User) error
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, posts: posts}
}

func (s *commentService) Add(ctx context.Context, postID string, actor *model.User, text string) (*model.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	comment := &model.Comment{
		ID:       uuid.New().String(),
		Text:     text,
		AuthorID: actor.ID,
		PostID:   post.ID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) GetOwned(ctx context.Context, id string, actor *model.User) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if actor == nil || actor.ID != comment.AuthorID {
		return nil, ErrNotOwner
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, id string, actor *model.User, text string) (*model.Comment, error) {
	comment, err := s.GetOwned(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	comment.Text = text
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id string, actor *model.User) error {
	comment, err := s.GetOwned(ctx, id, actor)
	if err != nil {
		return err
	}
	return s.comments.Delete(ctx, comment)
}
