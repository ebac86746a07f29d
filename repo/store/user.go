package store

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
)

// UserRepository 定义了用户集合的持久化操作接口。
// - 用户记录由发帖路径隐式维护：某作者名第一次发帖时创建，之后每次发帖递增经验计数。
//   不存在独立的"注册用户"写入口。
type UserRepository interface {
	// GetUserByName 按显示名精确获取用户档案。
	// - 如果未找到用户，返回 commonerrors.ErrRepoNotFound；
	//   服务层会把它翻译为"不存在"（返回 nil 而非错误）。
	GetUserByName(ctx context.Context, name string) (*entities.User, error)

	// ListUsersByExperience 返回全部用户，按经验计数倒序（贡献排行榜顺序）。
	ListUsersByExperience(ctx context.Context) ([]*entities.User, error)

	// UpsertOnNewPost 发帖成功后的用户维护：
	// - 该名字的用户不存在时，创建一条 experience_count = 1 的新档案，
	//   头像使用调用方给出的默认占位图，joined_at 设为当前时间，specialties 为空列表；
	// - 已存在时，仅把 experience_count 原子加一，其余档案字段全部保留。
	// - 必须与帖子插入共用同一个事务对象 db，保证两步写入的原子性。
	UpsertOnNewPost(ctx context.Context, db *gorm.DB, name string, defaultAvatar string) error
}

// userRepository 是 UserRepository 接口的 GORM 实现。
type userRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// GetUserByName 实现按显示名获取用户。
func (r *userRepository) GetUserByName(ctx context.Context, name string) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).First(&user, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按显示名获取用户数据库查询失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// ListUsersByExperience 实现贡献排行榜查询。
func (r *userRepository) ListUsersByExperience(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User

	// experience_count 上有二级索引；name 作为次级排序键保证同分用户顺序稳定。
	err := r.db.WithContext(ctx).
		Order("experience_count DESC").
		Order("name ASC").
		Find(&users).Error
	if err != nil {
		r.logger.Error("按经验计数查询用户列表失败", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// UpsertOnNewPost 实现发帖后的用户创建/经验计数递增。
func (r *userRepository) UpsertOnNewPost(ctx context.Context, db *gorm.DB, name string, defaultAvatar string) error {
	// 先尝试原子自增；帖子作者已存在时这是唯一需要的写操作，
	// 其余档案字段（头像、简介、擅长领域等）不被触碰。
	result := db.WithContext(ctx).
		Model(&entities.User{}).
		Where("name = ?", name).
		UpdateColumn("experience_count", gorm.Expr("experience_count + ?", 1))
	if result.Error != nil {
		r.logger.Error("递增用户经验计数失败", zap.Error(result.Error), zap.String("name", name))
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// 用户尚不存在：首次发帖即隐式建档。
	user := &entities.User{
		Name:            name,
		Avatar:          defaultAvatar,
		Specialties:     []string{},
		ExperienceCount: 1,
		JoinedAt:        time.Now(),
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		r.logger.Error("隐式创建用户档案失败", zap.Error(err), zap.String("name", name))
		return err
	}

	r.logger.Info("首次发帖，已隐式创建用户档案", zap.String("name", name))
	return nil
}
