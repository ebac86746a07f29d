package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/store"
)

// UserService 定义了用户档案相关业务逻辑的接口。
//
// 用户档案只在发帖路径上被隐式创建和维护（见 PostService.CreatePost），
// 本服务只承担读侧能力。
type UserService interface {
	// GetUser 按显示名查询用户档案。
	// - 用户不存在返回 nil（不存在建模为"缺席"，不是错误）。
	// - 读降级：存储故障同样返回 nil，只记日志。
	GetUser(ctx context.Context, name string) *vo.UserVO

	// ListUsers 返回全部用户，按 experience_count 倒序（同分按名字升序）。
	// - 读降级：存储故障时返回空列表。
	ListUsers(ctx context.Context) []*vo.UserVO
}

type userService struct {
	userRepo store.UserRepository
	logger   *core.ZapLogger
}

// NewUserService 是 userService 的构造函数。
func NewUserService(userRepo store.UserRepository, logger *core.ZapLogger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser 实现单用户查询。
func (s *userService) GetUser(ctx context.Context, name string) *vo.UserVO {
	user, err := s.userRepo.GetUserByName(ctx, name)
	if err != nil {
		if !errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Error("查询用户档案失败，降级为缺席", zap.Error(err), zap.String("name", name))
		}
		return nil
	}
	return vo.NewUserVOFromEntity(user)
}

// ListUsers 实现用户列表查询（读降级）。
func (s *userService) ListUsers(ctx context.Context) []*vo.UserVO {
	users, err := s.userRepo.ListUsersByExperience(ctx)
	if err != nil {
		s.logger.Error("获取用户列表失败，降级为空列表", zap.Error(err))
		return []*vo.UserVO{}
	}
	return vo.MapUsersToUserVOs(users)
}
