package model

import "time"

// User 博客用户
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex:ux_user_username;not null"`
	FirstName string    `gorm:"type:varchar(150)"`
	LastName  string    `gorm:"type:varchar(150)"`
	Email     string    `gorm:"type:varchar(254)"`
	Password  string    `gorm:"type:varchar(128);not null"` // bcrypt 哈希
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }

// FullName 展示名，为空时退回用户名
func (u *User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Username
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
