package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/gin-blog/config"
	"github.com/d60-Lab/gin-blog/internal/model"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "blog.db?_foreign_keys=1", SQLiteDSN("blog.db"))
	assert.Equal(t, "blog.db?cache=shared&_foreign_keys=1", SQLiteDSN("blog.db?cache=shared"))
	// 已经带开关的不重复追加
	assert.Equal(t, "blog.db?_foreign_keys=1", SQLiteDSN("blog.db?_foreign_keys=1"))
}

// 外键约束必须对池里每条连接生效，不只是第一条
func TestCascadeSurvivesConnectionChurn(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = filepath.Join(t.TempDir(), "churn.db")

	db, err := InitDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	// 强制每次操作用新连接
	sqlDB.SetMaxIdleConns(0)
	sqlDB.SetConnMaxLifetime(time.Nanosecond)

	author := &model.User{ID: uuid.NewString(), Username: "author", Email: "a@example.com", Password: "x"}
	require.NoError(t, db.Create(author).Error)
	post := &model.Post{
		ID: uuid.NewString(), Title: "t", Text: "body",
		PubDate: time.Now(), IsPublished: true, AuthorID: author.ID,
	}
	require.NoError(t, db.Create(post).Error)
	comment := &model.Comment{ID: uuid.NewString(), Text: "c", AuthorID: author.ID, PostID: post.ID}
	require.NoError(t, db.Create(comment).Error)

	require.NoError(t, db.Delete(author).Error)

	var posts, comments int64
	require.NoError(t, db.Model(&model.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&model.Comment{}).Count(&comments).Error)
	assert.EqualValues(t, 0, posts, "user delete cascades posts on a fresh connection")
	assert.EqualValues(t, 0, comments)
}
