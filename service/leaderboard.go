package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/redis"
	"github.com/Xushengqwer/community_service/repo/store"
)

// LeaderboardService 提供经验排行榜与最新信息流的缓存读路径。
//
// 快照由后台定时任务写入 Redis（见 tasks.LeaderboardCacheTask）。
// 缓存未命中时回源数据库，回源同样遵循读降级策略。
type LeaderboardService interface {
	// GetTopUsers 返回经验榜前 limit 名用户。
	// limit 不在 (0, LeaderboardCacheSize] 内时使用默认榜单大小。
	GetTopUsers(ctx context.Context, limit int) []*vo.UserVO

	// GetLatestFeed 返回最新信息流快照（创建时间倒序）。
	GetLatestFeed(ctx context.Context) []*vo.PostVO
}

type leaderboardService struct {
	cache    redis.LeaderboardCache
	userRepo store.UserRepository
	postRepo store.PostRepository
	logger   *core.ZapLogger
}

// NewLeaderboardService 是 leaderboardService 的构造函数。
func NewLeaderboardService(
	cache redis.LeaderboardCache,
	userRepo store.UserRepository,
	postRepo store.PostRepository,
	logger *core.ZapLogger,
) LeaderboardService {
	return &leaderboardService{
		cache:    cache,
		userRepo: userRepo,
		postRepo: postRepo,
		logger:   logger,
	}
}

// GetTopUsers 实现排行榜查询：优先读缓存，未命中回源数据库。
func (s *leaderboardService) GetTopUsers(ctx context.Context, limit int) []*vo.UserVO {
	if limit <= 0 || limit > constant.LeaderboardCacheSize {
		limit = constant.LeaderboardCacheSize
	}

	users, err := s.cache.GetTopUsers(ctx, int64(limit))
	if err == nil {
		return users
	}
	if !errors.Is(err, myErrors.ErrCacheMiss) {
		s.logger.Warn("读取排行榜缓存失败，回源数据库", zap.Error(err))
	}

	dbUsers, repoErr := s.userRepo.ListUsersByExperience(ctx)
	if repoErr != nil {
		s.logger.Error("排行榜回源数据库失败，降级为空列表", zap.Error(repoErr))
		return []*vo.UserVO{}
	}
	if len(dbUsers) > limit {
		dbUsers = dbUsers[:limit]
	}
	return vo.MapUsersToUserVOs(dbUsers)
}

// GetLatestFeed 实现最新信息流查询：优先读缓存快照，未命中回源数据库。
func (s *leaderboardService) GetLatestFeed(ctx context.Context) []*vo.PostVO {
	feed, err := s.cache.GetLatestFeed(ctx)
	if err == nil {
		return feed
	}
	if !errors.Is(err, myErrors.ErrCacheMiss) {
		s.logger.Warn("读取信息流快照失败，回源数据库", zap.Error(err))
	}

	posts, repoErr := s.postRepo.ListPosts(ctx)
	if repoErr != nil {
		s.logger.Error("信息流回源数据库失败，降级为空列表", zap.Error(repoErr))
		return []*vo.PostVO{}
	}
	if len(posts) > constant.LatestFeedCacheSize {
		posts = posts[:constant.LatestFeedCacheSize]
	}
	return vo.MapPostsToPostVOs(posts)
}
