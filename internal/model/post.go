package model

import "time"

// Post 文章主体。pub_date 可设为未来时间做定时发布
type Post struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Title       string    `gorm:"type:varchar(256);not null"`
	Text        string    `gorm:"type:text;not null"`
	PubDate     time.Time `gorm:"index:idx_post_pub;not null"`
	// 不能带 default 标签：gorm 会在 INSERT 里跳过零值字段，false 会被默认值吃掉
	IsPublished bool      `gorm:"not null"`
	AuthorID    string    `gorm:"type:varchar(36);index:idx_post_author;not null"`
	Author      User      `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID  *string   `gorm:"type:varchar(36);index:idx_post_category"`
	Category    *Category `gorm:"constraint:OnDelete:SET NULL"`
	LocationID  *string   `gorm:"type:varchar(36)"`
	Location    *Location `gorm:"constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// 读时聚合列（子查询别名 comment_count），不落表
	CommentCount int64 `gorm:"->;-:migration"`
}

func (Post) TableName() string { return "posts" }
