package dependencies

import (
	"path/filepath"
	"testing"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

func sqliteTestConfig(t *testing.T, schemaVersion int) *appConfig.CommunityConfig {
	t.Helper()
	return &appConfig.CommunityConfig{
		SQLiteConfig: appConfig.SQLiteConfig{
			Path:          filepath.Join(t.TempDir(), "community.db"),
			SchemaVersion: schemaVersion,
		},
	}
}

func newDepsTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

func TestInitSQLite_CreatesSchemaAndStampsVersion(t *testing.T) {
	cfg := sqliteTestConfig(t, 3)
	logger := newDepsTestLogger(t)

	db, err := InitSQLite(cfg, logger)
	require.NoError(t, err)

	var version int
	require.NoError(t, db.Raw("PRAGMA user_version").Scan(&version).Error)
	assert.Equal(t, 3, version)

	// 三个集合的表都应已建好。
	for _, model := range []interface{}{&entities.Post{}, &entities.Comment{}, &entities.User{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestInitSQLite_ReopenIsIdempotentAndKeepsData(t *testing.T) {
	cfg := sqliteTestConfig(t, 3)
	logger := newDepsTestLogger(t)

	db, err := InitSQLite(cfg, logger)
	require.NoError(t, err)

	post := &entities.Post{
		ID:     uuid.NewString(),
		Author: "alice",
		Title:  "survives reopen",
		Type:   enums.PostTypeDisease,
	}
	require.NoError(t, db.Create(post).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// 同路径同版本重新打开：既有记录必须原样保留。
	db2, err := InitSQLite(cfg, logger)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db2.Model(&entities.Post{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var reloaded entities.Post
	require.NoError(t, db2.First(&reloaded, "id = ?", post.ID).Error)
	assert.Equal(t, "survives reopen", reloaded.Title)
}

func TestInitSQLite_LowerRequestedVersionIsNoOp(t *testing.T) {
	cfg := sqliteTestConfig(t, 3)
	logger := newDepsTestLogger(t)

	db, err := InitSQLite(cfg, logger)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// 版本只允许前进：用更低的期望版本打开不触发迁移，也不回退版本号。
	cfg.SQLiteConfig.SchemaVersion = 2
	db2, err := InitSQLite(cfg, logger)
	require.NoError(t, err)

	var version int
	require.NoError(t, db2.Raw("PRAGMA user_version").Scan(&version).Error)
	assert.Equal(t, 3, version)
}
