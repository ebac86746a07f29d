// dependencies/redis.go
package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/community_service/config"
)

// InitRedis 初始化 Redis 客户端并验证连通性。
// - Redis 仅承载排行榜/信息流快照缓存，不是记录存储的一部分；
//   初始化失败会阻止启动，但运行期的缓存故障全部走回源路径。
func InitRedis(cfg *appConfig.RedisConfig, logger *core.ZapLogger) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis 地址 (redis.address) 未配置")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis Ping 失败", zap.String("address", cfg.Address), zap.Error(err))
		return nil, fmt.Errorf("连接 Redis '%s' 失败: %w", cfg.Address, err)
	}

	logger.Info("Redis 客户端初始化成功", zap.String("address", cfg.Address), zap.Int("db", cfg.DB))
	return client, nil
}
