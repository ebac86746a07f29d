// dependencies/storage.go
package dependencies

import (
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"gorm.io/gorm"

	appConfig "github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/models/entities"
)

// InitStorage 根据配置选择记录存储后端。
// - 两个后端满足同一套仓库契约：远程表存储 (MySQL) 是本地嵌入式存储 (SQLite)
//   的可直接替换实现，服务层和仓库层对后端差异无感知。
func InitStorage(cfg *appConfig.CommunityConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	backend := cfg.StorageConfig.Backend
	if backend == "" {
		backend = appConfig.StorageBackendLocal
	}

	switch backend {
	case appConfig.StorageBackendLocal:
		return InitSQLite(cfg, logger)
	case appConfig.StorageBackendRemote:
		return InitMySQL(cfg, logger)
	default:
		return nil, fmt.Errorf("未知的存储后端 '%s' (支持 local / remote)", backend)
	}
}

// autoMigrate 建立三个集合及其二级索引。
// - AutoMigrate 只做加法（新表/新列/新索引），不会删除或清空既有数据，
//   这是"版本升级不丢数据"契约的基础。
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Post{},
		&entities.Comment{},
		&entities.User{},
	)
}
