// File: tasks/leaderboard_cache.go
package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/vo"
	redisRepo "github.com/Xushengqwer/community_service/repo/redis"
	"github.com/Xushengqwer/community_service/repo/store"
)

// LeaderboardCacheTask 负责定时刷新 Redis 中的贡献排行榜与信息流快照。
// 快照只是记录存储的只读投影：刷新失败不影响数据正确性，
// 读路径会在缓存未命中时回源。
type LeaderboardCacheTask struct {
	userRepo store.UserRepository
	postRepo store.PostRepository
	cache    redisRepo.LeaderboardCache
	cron     *cron.Cron
	logger   *core.ZapLogger
}

// NewLeaderboardCacheTask 初始化并启动快照刷新的定时任务。
func NewLeaderboardCacheTask(
	userRepo store.UserRepository,
	postRepo store.PostRepository,
	cache redisRepo.LeaderboardCache,
	logger *core.ZapLogger,
) *LeaderboardCacheTask {
	cronV3 := cron.New() // 默认分钟级精度

	task := &LeaderboardCacheTask{
		userRepo: userRepo,
		postRepo: postRepo,
		cache:    cache,
		cron:     cronV3,
		logger:   logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *LeaderboardCacheTask) startCronJob() {
	schedule := constant.LeaderboardCacheCronSpec
	t.logger.Info("准备启动排行榜/信息流快照刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("排行榜/信息流快照刷新任务开始执行...")
		startTime := time.Now()
		// 为单次执行设置超时，防止任务卡死占用下一轮调度。
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		t.syncSnapshot(ctx)

		duration := time.Since(startTime)
		t.logger.Info("排行榜/信息流快照刷新任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加排行榜快照刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("排行榜/信息流快照刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// syncSnapshot 是定时任务执行的实际同步逻辑：
// 1. 从记录存储读出排行榜用户（经验计数倒序）与最新信息流。
// 2. 截断到快照容量上限后全量写入 Redis。
func (t *LeaderboardCacheTask) syncSnapshot(ctx context.Context) {
	users, err := t.userRepo.ListUsersByExperience(ctx)
	if err != nil {
		t.logger.Error("快照刷新：读取排行榜用户失败", zap.Error(err))
		return
	}
	if len(users) > constant.LeaderboardCacheSize {
		users = users[:constant.LeaderboardCacheSize]
	}

	posts, err := t.postRepo.ListPosts(ctx)
	if err != nil {
		t.logger.Error("快照刷新：读取信息流帖子失败", zap.Error(err))
		return
	}
	if len(posts) > constant.LatestFeedCacheSize {
		posts = posts[:constant.LatestFeedCacheSize]
	}

	if err := t.cache.RefreshSnapshot(ctx, vo.MapUsersToUserVOs(users), vo.MapPostsToPostVOs(posts)); err != nil {
		t.logger.Error("快照刷新：写入 Redis 失败", zap.Error(err))
	}
}

// Stop 停止调度并返回一个 context，调用者可用它等待正在执行的任务结束。
func (t *LeaderboardCacheTask) Stop() context.Context {
	t.logger.Info("正在停止排行榜/信息流快照刷新定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("排行榜/信息流快照刷新定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
