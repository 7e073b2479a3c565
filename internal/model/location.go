package model

import "time"

// Location 发布地点（由管理后台维护，应用内只读）
type Location struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Name        string    `gorm:"type:varchar(256);not null"`
	IsPublished bool      `gorm:"not null"`
	CreatedAt   time.Time
}

func (Location) TableName() string { return "locations" }
