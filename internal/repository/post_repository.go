package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/gin-blog/internal/model"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, post *model.Post) error
	// GetByID 不过滤可见性，作者预览路径使用
	GetByID(ctx context.Context, id string) (*model.Post, error)
	// GetVisibleByID 只在可见集合内查找
	GetVisibleByID(ctx context.Context, id string, now time.Time) (*model.Post, error)
	ListVisible(ctx context.Context, now time.Time, offset, limit int) ([]*model.Post, error)
	CountVisible(ctx context.Context, now time.Time) (int64, error)
	ListVisibleByCategory(ctx context.Context, categoryID string, now time.Time, offset, limit int) ([]*model.Post, error)
	CountVisibleByCategory(ctx context.Context, categoryID string, now time.Time) (int64, error)
	// ListByAuthor 不过滤可见性，个人主页按作者列出全部文章
	ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*model.Post, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

// visible 可见性谓词：已发布、发布时间不晚于 now、无分类或分类已发布
func visible(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("posts.is_published = ?", true).
			Where("posts.pub_date <= ?", now).
			Where("posts.category_id IS NULL OR posts.category_id IN (SELECT id FROM categories WHERE is_published = ?)", true)
	}
}

// withCommentCount 读时聚合评论数，映射到 Post.CommentCount
func withCommentCount(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count")
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	// 只写本表字段，预加载的关联不回写
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Delete(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Location").
		Scopes(withCommentCount).
		Where("posts.id = ?", id).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetVisibleByID(ctx context.Context, id string, now time.Time) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Location").
		Scopes(visible(now), withCommentCount).
		Where("posts.id = ?", id).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListVisible(ctx context.Context, now time.Time, offset, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Location").
		Scopes(visible(now), withCommentCount).
		Order("posts.pub_date DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountVisible(ctx context.Context, now time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Scopes(visible(now)).
		Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListVisibleByCategory(ctx context.Context, categoryID string, now time.Time, offset, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Location").
		Scopes(visible(now), withCommentCount).
		Where("posts.category_id = ?", categoryID).
		Order("posts.pub_date DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountVisibleByCategory(ctx context.Context, categoryID string, now time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Scopes(visible(now)).
		Where("posts.category_id = ?", categoryID).
		Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Location").
		Scopes(withCommentCount).
		Where("posts.author_id = ?", authorID).
		Order("posts.pub_date DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("posts.author_id = ?", authorID).
		Count(&cnt).Error
	return cnt, err
}
