package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/myErrors"
)

// LeaderboardCache 定义了贡献排行榜与信息流快照的缓存操作接口。
// - 目标: 排行榜页与信息流首屏走 Redis 快照，减轻记录存储的读压力。
// - 快照由定时任务全量刷新；缓存未命中时上层回源到记录存储，
//   因此这里的任何故障都不会影响数据正确性，只影响读取路径的选择。
type LeaderboardCache interface {
	// RefreshSnapshot 用数据库的最新数据全量重建排行榜 ZSet、用户档案 Hash
	// 和信息流快照。三个结构在一个 pipeline 中写入。
	RefreshSnapshot(ctx context.Context, users []*vo.UserVO, feed []*vo.PostVO) error

	// GetTopUsers 从排行榜快照读取前 limit 名用户（按经验计数降序）。
	// - 快照不存在（尚未刷新过或已过期清空）时返回 myErrors.ErrCacheMiss。
	GetTopUsers(ctx context.Context, limit int64) ([]*vo.UserVO, error)

	// GetLatestFeed 读取信息流快照。
	// - 快照不存在时返回 myErrors.ErrCacheMiss，上层服务需要处理回源。
	GetLatestFeed(ctx context.Context) ([]*vo.PostVO, error)
}

// leaderboardCache 是 LeaderboardCache 接口的 Redis 实现。
type leaderboardCache struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewLeaderboardCache 是 leaderboardCache 的构造函数。
func NewLeaderboardCache(redisClient *redis.Client, logger *core.ZapLogger) LeaderboardCache {
	return &leaderboardCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// RefreshSnapshot 实现快照的全量重建。
func (c *leaderboardCache) RefreshSnapshot(ctx context.Context, users []*vo.UserVO, feed []*vo.PostVO) error {
	pipe := c.redisClient.TxPipeline()

	// 1. 重建排行榜 ZSet 与用户档案 Hash。
	// 先删后写，保证被移出榜单的用户不会残留。
	pipe.Del(ctx, constant.UserRankKey, constant.UserProfileHashKey)
	if len(users) > 0 {
		members := make([]redis.Z, 0, len(users))
		profiles := make(map[string]interface{}, len(users))
		for _, user := range users {
			if user == nil {
				continue
			}
			members = append(members, redis.Z{
				Score:  float64(user.ExperienceCount),
				Member: user.Name,
			})
			profileBytes, err := json.Marshal(user)
			if err != nil {
				c.logger.Error("序列化用户档案快照失败", zap.Error(err), zap.String("name", user.Name))
				return fmt.Errorf("序列化用户档案 '%s' 失败: %w", user.Name, err)
			}
			profiles[user.Name] = profileBytes
		}
		pipe.ZAdd(ctx, constant.UserRankKey, members...)
		pipe.HSet(ctx, constant.UserProfileHashKey, profiles)
	}

	// 2. 重建信息流快照。
	feedBytes, err := json.Marshal(feed)
	if err != nil {
		c.logger.Error("序列化信息流快照失败", zap.Error(err))
		return fmt.Errorf("序列化信息流快照失败: %w", err)
	}
	pipe.Set(ctx, constant.LatestFeedKey, feedBytes, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Error("写入排行榜/信息流快照失败", zap.Error(err))
		return fmt.Errorf("写入快照失败: %w", err)
	}

	c.logger.Info("排行榜/信息流快照刷新完成",
		zap.Int("用户数", len(users)),
		zap.Int("帖子数", len(feed)),
	)
	return nil
}

// GetTopUsers 实现排行榜快照读取。
func (c *leaderboardCache) GetTopUsers(ctx context.Context, limit int64) ([]*vo.UserVO, error) {
	if limit <= 0 {
		limit = constant.LeaderboardCacheSize
	}

	// ZREVRANGE 按分数从高到低取前 limit 个成员（用户显示名）。
	names, err := c.redisClient.ZRevRange(ctx, constant.UserRankKey, 0, limit-1).Result()
	if err != nil {
		c.logger.Error("读取排行榜 ZSet 失败", zap.Error(err))
		return nil, fmt.Errorf("读取排行榜失败: %w", err)
	}
	if len(names) == 0 {
		// 快照尚未建立，由上层回源。
		return nil, myErrors.ErrCacheMiss
	}

	// 按名字批量取档案快照，保持 ZSet 给出的顺序。
	profiles, err := c.redisClient.HMGet(ctx, constant.UserProfileHashKey, names...).Result()
	if err != nil {
		c.logger.Error("批量读取用户档案快照失败", zap.Error(err))
		return nil, fmt.Errorf("读取用户档案快照失败: %w", err)
	}

	users := make([]*vo.UserVO, 0, len(names))
	for i, raw := range profiles {
		if raw == nil {
			// Hash 与 ZSet 理论上由同一 pipeline 写入，不一致说明快照被部分破坏。
			c.logger.Warn("排行榜成员缺少档案快照", zap.String("name", names[i]))
			continue
		}
		str, ok := raw.(string)
		if !ok {
			c.logger.Warn("用户档案快照类型异常", zap.String("name", names[i]))
			continue
		}
		var user vo.UserVO
		if err := json.Unmarshal([]byte(str), &user); err != nil {
			c.logger.Warn("反序列化用户档案快照失败", zap.Error(err), zap.String("name", names[i]))
			continue
		}
		users = append(users, &user)
	}
	return users, nil
}

// GetLatestFeed 实现信息流快照读取。
func (c *leaderboardCache) GetLatestFeed(ctx context.Context) ([]*vo.PostVO, error) {
	raw, err := c.redisClient.Get(ctx, constant.LatestFeedKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("读取信息流快照失败", zap.Error(err))
		return nil, fmt.Errorf("读取信息流快照失败: %w", err)
	}

	var feed []*vo.PostVO
	if err := json.Unmarshal([]byte(raw), &feed); err != nil {
		// 快照损坏按未命中处理，等待下一轮刷新覆盖。
		c.logger.Warn("反序列化信息流快照失败，按缓存未命中处理", zap.Error(err))
		return nil, myErrors.ErrCacheMiss
	}
	return feed, nil
}
