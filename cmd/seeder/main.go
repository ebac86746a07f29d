package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/dependencies"
	"github.com/Xushengqwer/community_service/mq/producer"
	"github.com/Xushengqwer/community_service/repo/store"
	servicePkg "github.com/Xushengqwer/community_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numPosts int
	var configFile string
	var sampleOnly bool
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numPosts, "n", 30, "要生成的帖子数量 (默认: 30)")
	flag.BoolVar(&sampleOnly, "sample-only", false, "仅在库为空时写入内置示例帖，不生成随机数据")
	var waitSeconds int
	flag.IntVar(&waitSeconds, "wait", 5, "数据填充后等待的秒数 (确保异步任务完成, 默认: 5秒)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 填充社区测试数据...\n", absConfigFile)

	if numPosts <= 0 && !sampleOnly {
		fmt.Println("错误: 生成的帖子数量必须大于 0")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.CommunityConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化存储后端 ---
	db, dbErr := dependencies.InitStorage(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化存储后端失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("存储后端连接成功 (Seeder)", zap.String("backend", cfg.StorageConfig.Backend))

	// --- 4. 初始化 Kafka 生产者（可选） ---
	var kafkaProducer producer.CommunityEventProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化 (Seeder)")
	}

	// --- 5. 初始化 Repositories 与 Services ---
	postRepo := store.NewPostRepository(db, logger)
	commentRepo := store.NewCommentRepository(db, logger)
	userRepo := store.NewUserRepository(db, logger)

	// 填充走服务层，保证派生计数与真实请求路径一致；seeder 不上传图片文件，COS 传 nil。
	postSvc := servicePkg.NewPostService(db, postRepo, userRepo, nil, kafkaProducer, logger)
	commentSvc := servicePkg.NewCommentService(db, commentRepo, postRepo, kafkaProducer, logger)
	logger.Info("Services 已初始化 (Seeder)")

	// --- 6. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()

	SeedSamplePostIfEmpty(ctx, db, postSvc, logger)
	if !sampleOnly {
		Seed(ctx, postSvc, commentSvc, logger, numPosts)
	}

	logger.Info("数据填充主要逻辑完成！", zap.Duration("耗时", time.Since(startTime)))

	// --- 7. 等待异步 Kafka 任务发送完成 ---
	if waitSeconds > 0 && kafkaProducer != nil {
		logger.Info(fmt.Sprintf("Seeder: 等待 %d 秒以允许异步 Kafka 消息发送...", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	fmt.Printf("数据填充完成！总耗时: %v\n", time.Since(startTime))
}
