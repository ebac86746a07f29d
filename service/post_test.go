package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/models/dto"
)

func validPostRequest(author, title string) *dto.CreatePostRequest {
	return &dto.CreatePostRequest{
		Author:        author,
		Title:         title,
		Content:       "content of " + title,
		Type:          "disease",
		CropType:      "Rice",
		Treatment:     "Organic Fungicide",
		Effectiveness: "high",
	}
}

func TestPostService_CreatePost_AssignsIDAndInitialCounters(t *testing.T) {
	env := newTestEnv(t)
	svc := env.postService()
	ctx := context.Background()

	postVO, err := svc.CreatePost(ctx, validPostRequest("alice", "rice blast"), nil)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(postVO.ID)
	assert.NoError(t, parseErr, "帖子 ID 应为存储层分配的 UUID")
	assert.EqualValues(t, 0, postVO.Likes)
	assert.EqualValues(t, 0, postVO.CommentCount)
	assert.False(t, postVO.CreatedAt.IsZero(), "创建时间应由存储层填充")

	second, err := svc.CreatePost(ctx, validPostRequest("alice", "another"), nil)
	require.NoError(t, err)
	assert.NotEqual(t, postVO.ID, second.ID, "每次发帖都应得到新的 ID")
}

func TestPostService_CreatePost_MaintainsAuthorProfile(t *testing.T) {
	env := newTestEnv(t)
	postSvc := env.postService()
	userSvc := env.userService()
	ctx := context.Background()

	// 首帖隐式建档。
	_, err := postSvc.CreatePost(ctx, validPostRequest("alice", "p1"), nil)
	require.NoError(t, err)

	userVO := userSvc.GetUser(ctx, "alice")
	require.NotNil(t, userVO)
	assert.EqualValues(t, 1, userVO.ExperienceCount)
	assert.Contains(t, userVO.Avatar, "ui-avatars.com", "建档头像应使用占位图服务")
	assert.NotNil(t, userVO.Specialties)

	// 后续每帖递增经验计数。
	for _, title := range []string{"p2", "p3"} {
		_, err = postSvc.CreatePost(ctx, validPostRequest("alice", title), nil)
		require.NoError(t, err)
	}

	userVO = userSvc.GetUser(ctx, "alice")
	require.NotNil(t, userVO)
	assert.EqualValues(t, 3, userVO.ExperienceCount)

	posts := postSvc.ListPostsByAuthor(ctx, "alice")
	assert.Len(t, posts, 3)
}

func TestPostService_CreatePost_KeepsProvidedAvatar(t *testing.T) {
	env := newTestEnv(t)
	svc := env.postService()
	ctx := context.Background()

	req := validPostRequest("bob", "with avatar")
	req.AuthorAvatar = "https://example.com/bob.png"
	postVO, err := svc.CreatePost(ctx, req, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/bob.png", postVO.AuthorAvatar)

	userVO := env.userService().GetUser(ctx, "bob")
	require.NotNil(t, userVO)
	assert.Equal(t, "https://example.com/bob.png", userVO.Avatar)
}

func TestPostService_ListFeed_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	svc := env.postService()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.CreatePost(ctx, validPostRequest("alice", title), nil)
		require.NoError(t, err)
	}

	feed := svc.ListFeed(ctx)
	require.Len(t, feed, 3)
	assert.Equal(t, "third", feed[0].Title)
	assert.Equal(t, "first", feed[2].Title)
}

func TestPostService_Reads_DegradeToEmptyOnStorageFault(t *testing.T) {
	env := newTestEnv(t)
	svc := env.postService()
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, validPostRequest("alice", "p1"), nil)
	require.NoError(t, err)

	env.closeDB(t)

	feed := svc.ListFeed(ctx)
	assert.NotNil(t, feed)
	assert.Empty(t, feed, "存储故障时信息流应降级为空列表")

	byAuthor := svc.ListPostsByAuthor(ctx, "alice")
	assert.NotNil(t, byAuthor)
	assert.Empty(t, byAuthor)
}

func TestPostService_CreatePost_PropagatesStorageFault(t *testing.T) {
	env := newTestEnv(t)
	svc := env.postService()

	env.closeDB(t)

	_, err := svc.CreatePost(context.Background(), validPostRequest("alice", "p1"), nil)
	assert.Error(t, err, "写操作的存储故障必须向上传播")
}
