package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 实体不存在或对请求者不可见（对外不区分）
	ErrNotFound = errors.New("not found")
	// ErrNotOwner 非作者尝试修改，处理层以重定向收场而非报错
	ErrNotOwner = errors.New("actor is not the author")
	// ErrUsernameTaken 注册/改名时用户名冲突
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials 登录失败，不区分用户不存在与密码错误
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionInvalid 会话令牌过期、被吊销或无法解析
	ErrSessionInvalid = errors.New("session invalid")
)

// notFoundOr 把 gorm 的未命中归一到 ErrNotFound
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
