package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=1"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Location{}, &model.Post{}, &model.Comment{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.NewString(), Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, slug string, published bool) *model.Category {
	t.Helper()
	c := &model.Category{ID: uuid.NewString(), Title: slug, Description: "d", Slug: slug, IsPublished: published}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedPost(t *testing.T, db *gorm.DB, author *model.User, pubDate time.Time, published bool, categoryID *string) *model.Post {
	t.Helper()
	p := &model.Post{
		ID:          uuid.NewString(),
		Title:       "t",
		Text:        "body",
		PubDate:     pubDate,
		IsPublished: published,
		AuthorID:    author.ID,
		CategoryID:  categoryID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedComment(t *testing.T, db *gorm.DB, author *model.User, postID string) *model.Comment {
	t.Helper()
	c := &model.Comment{ID: uuid.NewString(), Text: "c", AuthorID: author.ID, PostID: postID}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestVisibleScope(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "author")
	pubCat := seedCategory(t, db, "published-cat", true)
	hiddenCat := seedCategory(t, db, "hidden-cat", false)
	now := time.Now()

	visible := seedPost(t, db, u, now.Add(-time.Hour), true, nil)
	inPubCat := seedPost(t, db, u, now.Add(-2*time.Hour), true, &pubCat.ID)
	future := seedPost(t, db, u, now.Add(time.Hour), true, nil)
	draft := seedPost(t, db, u, now.Add(-time.Hour), false, nil)
	inHiddenCat := seedPost(t, db, u, now.Add(-time.Hour), true, &hiddenCat.ID)

	posts, err := repo.ListVisible(ctx, now, 0, 100)
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, p := range posts {
		ids[p.ID] = true
	}
	assert.True(t, ids[visible.ID], "published, past-dated, no category")
	assert.True(t, ids[inPubCat.ID], "published category does not hide the post")
	assert.False(t, ids[future.ID], "future pub_date is hidden")
	assert.False(t, ids[draft.ID], "unpublished post is hidden")
	assert.False(t, ids[inHiddenCat.ID], "unpublished category hides the post")

	total, err := repo.CountVisible(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestListVisibleOrderedByPubDateDesc(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "author")
	now := time.Now()

	old := seedPost(t, db, u, now.Add(-3*time.Hour), true, nil)
	newest := seedPost(t, db, u, now.Add(-time.Hour), true, nil)
	mid := seedPost(t, db, u, now.Add(-2*time.Hour), true, nil)

	posts, err := repo.ListVisible(ctx, now, 0, 100)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, newest.ID, posts[0].ID)
	assert.Equal(t, mid.ID, posts[1].ID)
	assert.Equal(t, old.ID, posts[2].ID)
}

func TestCommentCountAnnotation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "author")
	now := time.Now()

	p := seedPost(t, db, u, now.Add(-time.Hour), true, nil)
	seedComment(t, db, u, p.ID)
	seedComment(t, db, u, p.ID)
	other := seedPost(t, db, u, now.Add(-2*time.Hour), true, nil)

	posts, err := repo.ListVisible(ctx, now, 0, 100)
	require.NoError(t, err)
	counts := make(map[string]int64)
	for _, got := range posts {
		counts[got.ID] = got.CommentCount
	}
	assert.EqualValues(t, 2, counts[p.ID])
	assert.EqualValues(t, 0, counts[other.ID])
}

func TestGetVisibleByIDFiltersWhileGetByIDDoesNot(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "author")
	draft := seedPost(t, db, u, time.Now().Add(-time.Hour), false, nil)

	got, err := repo.GetByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)

	_, err = repo.GetVisibleByID(ctx, draft.ID, time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUnpublishedFlagSurvivesCreate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "author")

	draft := &model.Post{
		ID: uuid.NewString(), Title: "t", Text: "body",
		PubDate: time.Now().Add(-time.Hour), IsPublished: false, AuthorID: u.ID,
	}
	require.NoError(t, NewPostRepository(db).Create(ctx, draft))
	var stored bool
	require.NoError(t, db.Raw("SELECT is_published FROM posts WHERE id = ?", draft.ID).Scan(&stored).Error)
	assert.False(t, stored, "false must reach the row, not a column default")

	hidden := &model.Category{ID: uuid.NewString(), Title: "h", Description: "d", Slug: "hidden", IsPublished: false}
	require.NoError(t, NewCategoryRepository(db).Create(ctx, hidden))
	require.NoError(t, db.Raw("SELECT is_published FROM categories WHERE id = ?", hidden.ID).Scan(&stored).Error)
	assert.False(t, stored)

	loc := &model.Location{ID: uuid.NewString(), Name: "n", IsPublished: false}
	require.NoError(t, NewLocationRepository(db).Create(ctx, loc))
	require.NoError(t, db.Raw("SELECT is_published FROM locations WHERE id = ?", loc.ID).Scan(&stored).Error)
	assert.False(t, stored)
}

func TestCategoryDeleteSetsPostCategoryNull(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "author")
	cat := seedCategory(t, db, "to-delete", true)
	p := seedPost(t, db, u, time.Now().Add(-time.Hour), true, &cat.ID)

	require.NoError(t, NewCategoryRepository(db).Delete(ctx, cat))

	got, err := NewPostRepository(db).GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID, "post survives with category cleared")
}

func TestUserDeleteCascadesPostsAndComments(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	p := seedPost(t, db, author, time.Now().Add(-time.Hour), true, nil)
	seedComment(t, db, commenter, p.ID)

	require.NoError(t, NewUserRepository(db).Delete(ctx, author))

	var postCount, commentCount int64
	require.NoError(t, db.Model(&model.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&model.Comment{}).Count(&commentCount).Error)
	assert.EqualValues(t, 0, postCount, "author's posts removed")
	assert.EqualValues(t, 0, commentCount, "comments on removed posts are gone too")
}
