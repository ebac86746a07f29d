package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
)

// missCache 模拟尚未刷新过快照的缓存：所有读都未命中。
type missCache struct{}

func (missCache) RefreshSnapshot(_ context.Context, _ []*vo.UserVO, _ []*vo.PostVO) error {
	return nil
}
func (missCache) GetTopUsers(_ context.Context, _ int64) ([]*vo.UserVO, error) {
	return nil, myErrors.ErrCacheMiss
}
func (missCache) GetLatestFeed(_ context.Context) ([]*vo.PostVO, error) {
	return nil, myErrors.ErrCacheMiss
}

// snapshotCache 模拟已有快照的缓存，读取不回源。
type snapshotCache struct {
	users []*vo.UserVO
	feed  []*vo.PostVO
}

func (c *snapshotCache) RefreshSnapshot(_ context.Context, users []*vo.UserVO, feed []*vo.PostVO) error {
	c.users, c.feed = users, feed
	return nil
}
func (c *snapshotCache) GetTopUsers(_ context.Context, limit int64) ([]*vo.UserVO, error) {
	if len(c.users) == 0 {
		return nil, myErrors.ErrCacheMiss
	}
	if int64(len(c.users)) > limit {
		return c.users[:limit], nil
	}
	return c.users, nil
}
func (c *snapshotCache) GetLatestFeed(_ context.Context) ([]*vo.PostVO, error) {
	if len(c.feed) == 0 {
		return nil, myErrors.ErrCacheMiss
	}
	return c.feed, nil
}

func TestLeaderboardService_CacheMissFallsBackToStore(t *testing.T) {
	env := newTestEnv(t)
	postSvc := env.postService()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := postSvc.CreatePost(ctx, validPostRequest("alice", "a"), nil)
		require.NoError(t, err)
	}
	_, err := postSvc.CreatePost(ctx, validPostRequest("bob", "b"), nil)
	require.NoError(t, err)

	svc := NewLeaderboardService(missCache{}, env.userRepo, env.postRepo, env.logger)

	users := svc.GetTopUsers(ctx, 10)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Name)

	feed := svc.GetLatestFeed(ctx)
	assert.Len(t, feed, 3)
}

func TestLeaderboardService_ServesFromSnapshot(t *testing.T) {
	env := newTestEnv(t)
	cache := &snapshotCache{
		users: []*vo.UserVO{{Name: "cached-alice", ExperienceCount: 9}},
		feed:  []*vo.PostVO{{ID: "cached-post", Title: "from snapshot"}},
	}
	svc := NewLeaderboardService(cache, env.userRepo, env.postRepo, env.logger)
	ctx := context.Background()

	users := svc.GetTopUsers(ctx, 10)
	require.Len(t, users, 1)
	assert.Equal(t, "cached-alice", users[0].Name)

	feed := svc.GetLatestFeed(ctx)
	require.Len(t, feed, 1)
	assert.Equal(t, "from snapshot", feed[0].Title)
}

func TestLeaderboardService_DegradesToEmptyWhenCacheAndStoreFail(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLeaderboardService(missCache{}, env.userRepo, env.postRepo, env.logger)
	ctx := context.Background()

	env.closeDB(t)

	users := svc.GetTopUsers(ctx, 10)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	feed := svc.GetLatestFeed(ctx)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}
