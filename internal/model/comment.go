package model

import "time"

// Comment 文章评论
type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Text      string    `gorm:"type:text;not null"`
	AuthorID  string    `gorm:"type:varchar(36);index:idx_comment_author;not null"`
	Author    User      `gorm:"constraint:OnDelete:CASCADE"`
	PostID    string    `gorm:"type:varchar(36);index:idx_comment_post;not null"`
	Post      Post      `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
