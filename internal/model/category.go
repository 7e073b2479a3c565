package model

import "time"

// Category 文章分类（由管理后台维护，应用内只读）
type Category struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Title       string    `gorm:"type:varchar(256);not null"`
	Description string    `gorm:"type:text;not null"`
	Slug        string    `gorm:"type:varchar(64);uniqueIndex:ux_category_slug;not null"`
	IsPublished bool      `gorm:"not null"`
	CreatedAt   time.Time
}

func (Category) TableName() string { return "categories" }
