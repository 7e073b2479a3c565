package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/gin-blog/internal/model"
)

const denylistPrefix = "session:denylist:"

// SessionManager 签发/校验 JWT 会话令牌。
// 登出把 jti 写入 Redis 拒绝名单直到令牌自然过期，其余校验无状态。
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	rdb    *redis.Client
}

func NewSessionManager(secret string, ttl time.Duration, rdb *redis.Client) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl, rdb: rdb}
}

// TTL 会话有效期，cookie MaxAge 与之对齐
func (m *SessionManager) TTL() time.Duration { return m.ttl }

// Issue 为用户签发会话令牌
func (m *SessionManager) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate 解析令牌并检查拒绝名单，返回用户 ID
func (m *SessionManager) Validate(ctx context.Context, tokenString string) (string, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return "", ErrSessionInvalid
	}
	n, err := m.rdb.Exists(ctx, denylistPrefix+claims.ID).Result()
	if err != nil {
		return "", fmt.Errorf("check denylist: %w", err)
	}
	if n > 0 {
		return "", ErrSessionInvalid
	}
	return claims.Subject, nil
}

// Revoke 吊销令牌（登出）。已过期的令牌直接忽略。
func (m *SessionManager) Revoke(ctx context.Context, tokenString string) error {
	claims, err := m.parse(tokenString)
	if err != nil {
		return nil
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}
	if err := m.rdb.Set(ctx, denylistPrefix+claims.ID, 1, remaining).Err(); err != nil {
		return fmt.Errorf("denylist token: %w", err)
	}
	return nil
}

func (m *SessionManager) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	return &claims, nil
}
