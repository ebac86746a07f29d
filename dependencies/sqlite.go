// dependencies/sqlite.go
package dependencies

import (
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appConfig "github.com/Xushengqwer/community_service/config"
)

// defaultSchemaVersion 是当前代码期望的模式版本。
// 历史: v1 posts / v2 +comments / v3 +users 与经验计数索引。
const defaultSchemaVersion = 3

// InitSQLite 打开本地嵌入式记录存储。
// - 打开是幂等的：同一路径、同一模式版本的重复打开直接返回可用句柄，不重复建表，
//   更不会清空或复制既有记录。
// - 版本升级只做加法（AutoMigrate 只新增表/列/索引，从不删除），
//   因此升级不会破坏无关集合中的既有数据。
func InitSQLite(cfg *appConfig.CommunityConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	sqliteCfg := cfg.SQLiteConfig
	if sqliteCfg.Path == "" {
		return nil, fmt.Errorf("本地存储路径 (sqlite.path) 未配置")
	}

	schemaVersion := sqliteCfg.SchemaVersion
	if schemaVersion <= 0 {
		schemaVersion = defaultSchemaVersion
	}

	gormLogger := core.NewGormLogger(logger, cfg.GormLogConfig)
	db, err := gorm.Open(sqlite.Open(sqliteCfg.Path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		logger.Error("打开本地 SQLite 存储失败", zap.String("path", sqliteCfg.Path), zap.Error(err))
		return nil, fmt.Errorf("打开本地存储 '%s' 失败: %w", sqliteCfg.Path, err)
	}

	// 单文件库的写锁竞争通过 busy_timeout 缓解，写入方在锁释放前等待而非立即报错。
	busyTimeout := sqliteCfg.BusyTimeoutMs
	if busyTimeout <= 0 {
		busyTimeout = 5000
	}
	if err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout)).Error; err != nil {
		logger.Warn("设置 SQLite busy_timeout 失败", zap.Error(err))
	}

	// 读取当前模式版本 (PRAGMA user_version，新库为 0)。
	var currentVersion int
	if err := db.Raw("PRAGMA user_version").Scan(&currentVersion).Error; err != nil {
		logger.Error("读取 SQLite 模式版本失败", zap.Error(err))
		return nil, fmt.Errorf("读取模式版本失败: %w", err)
	}

	if currentVersion >= schemaVersion {
		// 同版本重复打开：幂等，无迁移。
		logger.Info("本地存储已是期望模式版本，跳过迁移",
			zap.String("path", sqliteCfg.Path),
			zap.Int("version", currentVersion),
		)
		return db, nil
	}

	// 首次打开或版本升级：做加法迁移并推进版本号。
	logger.Info("开始初始化/升级本地存储模式",
		zap.String("path", sqliteCfg.Path),
		zap.Int("fromVersion", currentVersion),
		zap.Int("toVersion", schemaVersion),
	)
	if err := autoMigrate(db); err != nil {
		logger.Error("本地存储模式迁移失败", zap.Error(err))
		return nil, fmt.Errorf("本地存储模式迁移失败: %w", err)
	}
	if err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)).Error; err != nil {
		logger.Error("写入 SQLite 模式版本失败", zap.Error(err))
		return nil, fmt.Errorf("写入模式版本失败: %w", err)
	}

	logger.Info("成功初始化本地 SQLite 存储",
		zap.String("path", sqliteCfg.Path),
		zap.Int("schemaVersion", schemaVersion),
	)
	return db, nil
}
