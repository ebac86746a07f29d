package store

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
)

// CommentRepository 定义了评论集合的持久化操作接口。
type CommentRepository interface {
	// CreateComment 持久化一条新评论。
	// - post_id 不做存在性校验，数据库层也没有外键约束。
	// - 写操作：存储故障直接向上传播。
	CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error

	// ListCommentsByPostID 返回指定帖子的全部评论，按创建时间倒序。
	ListCommentsByPostID(ctx context.Context, postID string) ([]*entities.Comment, error)
}

// commentRepository 是 CommentRepository 接口的 GORM 实现。
type commentRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *core.ZapLogger) CommentRepository {
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment 实现评论的插入操作。
func (r *commentRepository) CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error {
	if err := db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// ListCommentsByPostID 实现按帖子查询评论列表。
func (r *commentRepository) ListCommentsByPostID(ctx context.Context, postID string) ([]*entities.Comment, error) {
	var comments []*entities.Comment

	// post_id 上有二级索引；created_at 倒序使最新评论排在最前。
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&comments).Error
	if err != nil {
		r.logger.Error("查询帖子评论列表失败",
			zap.Error(err),
			zap.String("postID", postID),
		)
		return nil, err
	}
	return comments, nil
}
