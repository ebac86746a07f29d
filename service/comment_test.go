package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/models/dto"
)

func TestCommentService_AddComment_IncrementsPostCounter(t *testing.T) {
	env := newTestEnv(t)
	postSvc := env.postService()
	commentSvc := env.commentService()
	ctx := context.Background()

	postVO, err := postSvc.CreatePost(ctx, validPostRequest("alice", "commented"), nil)
	require.NoError(t, err)

	for _, content := range []string{"great tip", "worked for me too"} {
		_, err = commentSvc.AddComment(ctx, &dto.CreateCommentRequest{
			PostID:  postVO.ID,
			Author:  "bob",
			Content: content,
		})
		require.NoError(t, err)
	}

	feed := postSvc.ListFeed(ctx)
	require.Len(t, feed, 1)
	assert.EqualValues(t, 2, feed[0].CommentCount, "每条评论都应使帖子计数加一")

	comments := commentSvc.ListCommentsForPost(ctx, postVO.ID)
	require.Len(t, comments, 2)
	assert.Equal(t, "worked for me too", comments[0].Content, "评论按创建时间倒序")
}

func TestCommentService_AddComment_OrphanCommentAccepted(t *testing.T) {
	env := newTestEnv(t)
	commentSvc := env.commentService()
	ctx := context.Background()

	missingPostID := uuid.NewString()
	commentVO, err := commentSvc.AddComment(ctx, &dto.CreateCommentRequest{
		PostID:  missingPostID,
		Author:  "bob",
		Content: "shouting into the void",
	})
	require.NoError(t, err, "目标帖子不存在时评论照常写入")
	assert.Equal(t, missingPostID, commentVO.PostID)

	comments := commentSvc.ListCommentsForPost(ctx, missingPostID)
	require.Len(t, comments, 1)
	assert.Equal(t, "shouting into the void", comments[0].Content)
}

func TestCommentService_ListComments_DegradesToEmptyOnStorageFault(t *testing.T) {
	env := newTestEnv(t)
	commentSvc := env.commentService()
	ctx := context.Background()

	env.closeDB(t)

	comments := commentSvc.ListCommentsForPost(ctx, uuid.NewString())
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestCommentService_AddComment_PropagatesStorageFault(t *testing.T) {
	env := newTestEnv(t)
	commentSvc := env.commentService()

	env.closeDB(t)

	_, err := commentSvc.AddComment(context.Background(), &dto.CreateCommentRequest{
		PostID:  uuid.NewString(),
		Author:  "bob",
		Content: "never stored",
	})
	assert.Error(t, err)
}
