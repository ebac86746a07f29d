package service

import (
	"fmt"
	"testing"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/repo/store"
)

// testEnv 聚合服务层测试共用的依赖：内存库、各仓库与 logger。
type testEnv struct {
	db          *gorm.DB
	postRepo    store.PostRepository
	commentRepo store.CommentRepository
	userRepo    store.UserRepository
	logger      *core.ZapLogger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err, "初始化测试 logger 失败")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "打开内存 SQLite 失败")
	require.NoError(t, db.AutoMigrate(&entities.Post{}, &entities.Comment{}, &entities.User{}), "建表失败")

	return &testEnv{
		db:          db,
		postRepo:    store.NewPostRepository(db, logger),
		commentRepo: store.NewCommentRepository(db, logger),
		userRepo:    store.NewUserRepository(db, logger),
		logger:      logger,
	}
}

// closeDB 关闭底层连接池，把后续所有存储访问变成必然失败，用于验证读降级。
func (e *testEnv) closeDB(t *testing.T) {
	t.Helper()
	sqlDB, err := e.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func (e *testEnv) postService() PostService {
	// 测试不经过对象存储与事件发布，两者都为 nil（与未配置时的线上形态一致）。
	return NewPostService(e.db, e.postRepo, e.userRepo, nil, nil, e.logger)
}

func (e *testEnv) commentService() CommentService {
	return NewCommentService(e.db, e.commentRepo, e.postRepo, nil, e.logger)
}

func (e *testEnv) userService() UserService {
	return NewUserService(e.userRepo, e.logger)
}
