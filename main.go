package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Xushengqwer/community_service/docs" // 确保导入了 docs 包

	// 导入项目包
	appConfig "github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/controller"
	"github.com/Xushengqwer/community_service/dependencies"
	"github.com/Xushengqwer/community_service/mq/producer"
	redisRepo "github.com/Xushengqwer/community_service/repo/redis"
	"github.com/Xushengqwer/community_service/repo/store"
	"github.com/Xushengqwer/community_service/router"
	"github.com/Xushengqwer/community_service/service"
	"github.com/Xushengqwer/community_service/tasks"

	// 导入公共模块
	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// @title           Community Service API
// @version         1.0
// @description     农友社区服务，提供经验帖发布、评论、用户档案、排行榜与参考资料等功能。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8085
// API 的主机和端口 (根据开发环境配置)

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.CommunityConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 打印最终生效的配置以供调试
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("无法序列化配置以进行打印: %v", err)
	}
	log.Printf("✅ 配置加载成功！最终生效的配置如下:\n%s\n", string(configBytes))

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		logger.Info("正在同步日志...")
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	var tracerShutdown func(context.Context) error // 用于优雅关停
	if cfg.TracerConfig.Enabled {
		var err error
		tracerShutdown, err = sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			} else {
				logger.Info("TracerProvider 已成功关闭")
			}
		}()
		logger.Info("分布式追踪已初始化")
		// 当前服务没有出站 HTTP 调用，仅初始化 Transport 备用
		_ = otelhttp.NewTransport(http.DefaultTransport)
		logger.Debug("OTel HTTP Transport 初始化完成 (暂未使用)")
	} else {
		logger.Info("分布式追踪已禁用")
		tracerShutdown = func(ctx context.Context) error { return nil }
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 存储后端（local: SQLite 单机文件库 / remote: 托管 MySQL）
	db, dbErr := dependencies.InitStorage(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化存储后端失败", zap.Error(dbErr), zap.String("backend", cfg.StorageConfig.Backend))
	}
	logger.Info("存储后端连接成功", zap.String("backend", cfg.StorageConfig.Backend))

	// 4.2 Redis
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	// 4.3 COS 客户端（remote 后端的图片托管；未配置 bucket 时禁用文件上传）
	var cos dependencies.COSClientInterface
	if cfg.COSConfig.BucketName != "" {
		var cosErr error
		cos, cosErr = dependencies.InitCOS(&cfg.COSConfig, logger)
		if cosErr != nil {
			logger.Fatal("初始化 COS 客户端失败", zap.Error(cosErr))
		}
		logger.Info("COS 客户端初始化成功")
	} else {
		logger.Warn("未配置 COS bucket，配图文件上传能力已禁用")
	}

	// 4.4 Kafka 生产者
	var kafkaProducer producer.CommunityEventProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，社区事件发布已禁用")
	}

	// --- 5. 初始化数据仓库层 (Repositories) ---
	postRepo := store.NewPostRepository(db, logger)
	commentRepo := store.NewCommentRepository(db, logger)
	userRepo := store.NewUserRepository(db, logger)
	logger.Debug("存储 Repositories 初始化完成")

	leaderboardCache := redisRepo.NewLeaderboardCache(rdb, logger)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	postService := service.NewPostService(db, postRepo, userRepo, cos, kafkaProducer, logger)
	commentService := service.NewCommentService(db, commentRepo, postRepo, kafkaProducer, logger)
	userService := service.NewUserService(userRepo, logger)
	leaderboardService := service.NewLeaderboardService(leaderboardCache, userRepo, postRepo, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	postController := controller.NewPostController(postService)
	commentController := controller.NewCommentController(commentService)
	userController := controller.NewUserController(userService)
	leaderboardController := controller.NewLeaderboardController(leaderboardService)
	referenceController := controller.NewReferenceController()
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化定时任务 ---
	cacheTask := tasks.NewLeaderboardCacheTask(userRepo, postRepo, leaderboardCache, logger)
	logger.Info("后台定时任务已初始化并启动")

	// --- 9. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg,
		postController, commentController, userController, leaderboardController, referenceController)
	logger.Info("Gin 路由器已设置")

	// --- 10. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 11. 实现优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	// a. 停止 HTTP 服务器 (允许处理完当前请求)
	logger.Info("正在关闭 HTTP 服务器...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 停止定时任务调度器 (等待正在执行的任务结束)
	logger.Info("正在停止定时任务...")
	cacheStopCtx := cacheTask.Stop()
	select {
	case <-cacheStopCtx.Done():
		logger.Info("排行榜快照刷新任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	// c. 关闭 Kafka 生产者
	if kafkaProducer != nil {
		logger.Info("正在关闭 Kafka 生产者...")
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}

	// d. (其他清理，例如关闭 TracerProvider - 已通过 defer 处理)

	logger.Info("服务已成功关闭")
}
