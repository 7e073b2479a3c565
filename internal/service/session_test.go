package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-blog/internal/model"
)

func newSessionFixture(t *testing.T) *SessionManager {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewSessionManager("test-secret", time.Hour, rdb)
}

func TestSessionIssueAndValidate(t *testing.T) {
	m := newSessionFixture(t)
	u := &model.User{ID: uuid.NewString(), Username: "u"}

	token, err := m.Issue(u)
	require.NoError(t, err)

	userID, err := m.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
}

func TestSessionRevokedTokenRejected(t *testing.T) {
	m := newSessionFixture(t)
	u := &model.User{ID: uuid.NewString(), Username: "u"}
	ctx := context.Background()

	token, err := m.Issue(u)
	require.NoError(t, err)
	require.NoError(t, m.Revoke(ctx, token))

	_, err = m.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionGarbageTokenRejected(t *testing.T) {
	m := newSessionFixture(t)
	_, err := m.Validate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrSessionInvalid)

	// 吊销无法解析的令牌是无操作
	assert.NoError(t, m.Revoke(context.Background(), "not-a-token"))
}

func TestSessionWrongSecretRejected(t *testing.T) {
	m := newSessionFixture(t)
	other := newSessionFixture(t)
	u := &model.User{ID: uuid.NewString(), Username: "u"}

	token, err := m.Issue(u)
	require.NoError(t, err)
	// 不同实例同一 secret 仍然有效
	userID, err := other.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)

	forged := NewSessionManager("another-secret", time.Hour, nil)
	badToken, err := forged.Issue(u)
	require.NoError(t, err)
	_, err = m.Validate(context.Background(), badToken)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}
