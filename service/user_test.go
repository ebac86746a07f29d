package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUser_MissingUserIsAbsence(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()

	userVO := svc.GetUser(context.Background(), "nobody")
	assert.Nil(t, userVO, "不存在的用户应返回 nil 而不是错误")
}

func TestUserService_ListUsers_OrderedByExperience(t *testing.T) {
	env := newTestEnv(t)
	postSvc := env.postService()
	userSvc := env.userService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := postSvc.CreatePost(ctx, validPostRequest("alice", "a"), nil)
		require.NoError(t, err)
	}
	_, err := postSvc.CreatePost(ctx, validPostRequest("bob", "b"), nil)
	require.NoError(t, err)

	users := userSvc.ListUsers(ctx)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Name)
	assert.EqualValues(t, 3, users[0].ExperienceCount)
	assert.Equal(t, "bob", users[1].Name)
}

func TestUserService_ListUsers_DegradesToEmptyOnStorageFault(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()

	env.closeDB(t)

	users := svc.ListUsers(context.Background())
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
