package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err, "初始化测试 logger 失败")
	return logger
}

// newTestDB 为每个测试打开一个独立的内存 SQLite 库并完成建表。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "打开内存 SQLite 失败")

	err = db.AutoMigrate(&entities.Post{}, &entities.Comment{}, &entities.User{})
	require.NoError(t, err, "建表失败")
	return db
}

func newTestPost(author, title string, createdAt time.Time) *entities.Post {
	return &entities.Post{
		ID:           uuid.NewString(),
		Author:       author,
		AuthorAvatar: "https://ui-avatars.com/api/?name=" + author,
		Title:        title,
		Content:      "content of " + title,
		Type:         enums.PostTypeDisease,
		CreatedAt:    createdAt,
	}
}

func TestPostRepository_ListPostsOrdersByCreatedAtDesc(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	base := time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)
	oldest := newTestPost("alice", "oldest", base)
	middle := newTestPost("bob", "middle", base.Add(time.Hour))
	newest := newTestPost("alice", "newest", base.Add(2*time.Hour))
	for _, p := range []*entities.Post{middle, oldest, newest} {
		require.NoError(t, repo.CreatePost(ctx, db, p))
	}

	posts, err := repo.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Title)
	assert.Equal(t, "middle", posts[1].Title)
	assert.Equal(t, "oldest", posts[2].Title)
}

func TestPostRepository_ListPostsByAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repo.CreatePost(ctx, db, newTestPost("alice", "a1", now)))
	require.NoError(t, repo.CreatePost(ctx, db, newTestPost("bob", "b1", now)))
	require.NoError(t, repo.CreatePost(ctx, db, newTestPost("alice", "a2", now)))

	posts, err := repo.ListPostsByAuthor(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, "alice", p.Author)
	}

	none, err := repo.ListPostsByAuthor(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostRepository_GetPostByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))

	_, err := repo.GetPostByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestPostRepository_IncrementCommentCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	post := newTestPost("alice", "counted", time.Now())
	require.NoError(t, repo.CreatePost(ctx, db, post))

	found, err := repo.IncrementCommentCount(ctx, db, post.ID)
	require.NoError(t, err)
	assert.True(t, found)
	found, err = repo.IncrementCommentCount(ctx, db, post.ID)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := repo.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.CommentCount)
	assert.EqualValues(t, 0, got.Likes)
}

func TestPostRepository_IncrementCommentCount_MissingPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db, newTestLogger(t))

	// 目标不存在不是错误，只是无处可加。
	found, err := repo.IncrementCommentCount(context.Background(), db, uuid.NewString())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCommentRepository_ListCommentsByPostID(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db, newTestLogger(t))
	ctx := context.Background()

	postID := uuid.NewString()
	base := time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)
	first := &entities.Comment{ID: uuid.NewString(), PostID: postID, Author: "bob", Content: "first", CreatedAt: base}
	second := &entities.Comment{ID: uuid.NewString(), PostID: postID, Author: "carol", Content: "second", CreatedAt: base.Add(time.Minute)}
	other := &entities.Comment{ID: uuid.NewString(), PostID: uuid.NewString(), Author: "dave", Content: "elsewhere", CreatedAt: base}
	for _, c := range []*entities.Comment{first, second, other} {
		require.NoError(t, repo.CreateComment(ctx, db, c))
	}

	comments, err := repo.ListCommentsByPostID(ctx, postID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Content)
	assert.Equal(t, "first", comments[1].Content)

	empty, err := repo.ListCommentsByPostID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUserRepository_UpsertOnNewPost_CreatesThenIncrements(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, newTestLogger(t))
	ctx := context.Background()

	avatar := "https://ui-avatars.com/api/?name=alice&background=random"
	require.NoError(t, repo.UpsertOnNewPost(ctx, db, "alice", avatar))

	user, err := repo.GetUserByName(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, user.ExperienceCount)
	assert.Equal(t, avatar, user.Avatar)
	assert.NotNil(t, user.Specialties)
	assert.Empty(t, user.Specialties)
	assert.False(t, user.JoinedAt.IsZero())

	// 再发两帖：只递增计数，档案其余字段保持不变。
	require.NoError(t, repo.UpsertOnNewPost(ctx, db, "alice", "https://example.com/other.png"))
	require.NoError(t, repo.UpsertOnNewPost(ctx, db, "alice", "https://example.com/other.png"))

	user, err = repo.GetUserByName(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 3, user.ExperienceCount)
	assert.Equal(t, avatar, user.Avatar, "已有档案的头像不应被后续发帖覆盖")
}

func TestUserRepository_GetUserByName_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, newTestLogger(t))

	_, err := repo.GetUserByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestUserRepository_ListUsersByExperience(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, newTestLogger(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.UpsertOnNewPost(ctx, db, "alice", "a"))
	}
	require.NoError(t, repo.UpsertOnNewPost(ctx, db, "bob", "b"))
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.UpsertOnNewPost(ctx, db, "carol", "c"))
	}

	users, err := repo.ListUsersByExperience(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Name)
	assert.EqualValues(t, 3, users[0].ExperienceCount)
	assert.Equal(t, "carol", users[1].Name)
	assert.Equal(t, "bob", users[2].Name)
}
