package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

// ProfileInput 个人资料表单字段
type ProfileInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
}

type ProfileService interface {
	// Profile 公开主页：作者全部文章（含未发布）带评论数，倒序分页
	Profile(ctx context.Context, username string, page int) (*model.User, *PostPage, error)
	// UpdateProfile 只能改自己的资料
	UpdateProfile(ctx context.Context, actor *model.User, in ProfileInput) (*model.User, error)
}

type profileService struct {
	users     repository.UserRepository
	posts     repository.PostRepository
	paginator *Paginator
}

func NewProfileService(users repository.UserRepository, posts repository.PostRepository, paginator *Paginator) ProfileService {
	return &profileService{users: users, posts: posts, paginator: paginator}
}

func (s *profileService) Profile(ctx context.Context, username string, page int) (*model.User, *PostPage, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, notFoundOr(err)
	}
	total, err := s.posts.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	info := s.paginator.Resolve(total, page)
	items, err := s.posts.ListByAuthor(ctx, user.ID, info.Offset(), info.Limit())
	if err != nil {
		return nil, nil, err
	}
	return user, &PostPage{Posts: items, Page: info}, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, actor *model.User, in ProfileInput) (*model.User, error) {
	if in.Username != actor.Username {
		_, err := s.users.GetByUsername(ctx, in.Username)
		if err == nil {
			return nil, ErrUsernameTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	actor.Username = in.Username
	actor.FirstName = in.FirstName
	actor.LastName = in.LastName
	actor.Email = in.Email
	if err := s.users.Update(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}
