package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/events"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/mq/producer"
	"github.com/Xushengqwer/community_service/repo/store"
)

// CommentService 定义了评论相关业务逻辑的接口。
type CommentService interface {
	// AddComment 处理发表评论的业务流程。
	// - 评论插入与所属帖子的评论计数自增在同一个事务中完成。
	// - 目标帖子不存在时评论照常写入（孤儿评论被接受），仅跳过计数并记日志。
	// - 成功后异步发布 CommentCreated 事件。
	AddComment(ctx context.Context, req *dto.CreateCommentRequest) (*vo.CommentVO, error)

	// ListCommentsForPost 返回指定帖子下的全部评论，按创建时间倒序。
	// - 读降级：存储故障时返回空列表，不返回错误。
	ListCommentsForPost(ctx context.Context, postID string) []*vo.CommentVO
}

type commentService struct {
	db          *gorm.DB
	commentRepo store.CommentRepository
	postRepo    store.PostRepository
	kafkaSvc    producer.CommunityEventProducer
	logger      *core.ZapLogger
}

// NewCommentService 是 commentService 的构造函数。
func NewCommentService(
	db *gorm.DB,
	commentRepo store.CommentRepository,
	postRepo store.PostRepository,
	kafkaSvc producer.CommunityEventProducer,
	logger *core.ZapLogger,
) CommentService {
	return &commentService{
		db:          db,
		commentRepo: commentRepo,
		postRepo:    postRepo,
		kafkaSvc:    kafkaSvc,
		logger:      logger,
	}
}

// AddComment 实现发表评论流程。
func (s *commentService) AddComment(ctx context.Context, req *dto.CreateCommentRequest) (*vo.CommentVO, error) {
	comment := &entities.Comment{
		ID:      uuid.NewString(),
		PostID:  req.PostID,
		Author:  req.Author,
		Content: req.Content,
	}

	// 插入评论与维护帖子计数在同一事务内，避免"评论已写入但 comments 未加一"的中间态。
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.commentRepo.CreateComment(ctx, tx, comment); repoErr != nil {
			return fmt.Errorf("创建评论失败: %w", repoErr)
		}
		found, repoErr := s.postRepo.IncrementCommentCount(ctx, tx, req.PostID)
		if repoErr != nil {
			return fmt.Errorf("更新帖子评论计数失败: %w", repoErr)
		}
		if !found {
			// 不存在引用完整性约束：评论保留，计数无处可加。
			s.logger.Warn("评论的目标帖子不存在，跳过计数更新",
				zap.String("post_id", req.PostID),
				zap.String("comment_id", comment.ID))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("发表评论事务失败", zap.Error(err), zap.String("post_id", req.PostID))
		return nil, err
	}

	if s.kafkaSvc != nil {
		commentData := events.CommentData{
			ID:        comment.ID,
			PostID:    comment.PostID,
			Author:    comment.Author,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt.UnixMilli(),
		}
		go func(cd events.CommentData) {
			bgCtx := context.Background()
			if kafkaErr := s.kafkaSvc.SendCommentCreatedEvent(bgCtx, cd); kafkaErr != nil {
				s.logger.Error("发布评论创建事件失败", zap.Error(kafkaErr), zap.String("comment_id", cd.ID))
			}
		}(commentData)
	}

	return vo.NewCommentVOFromEntity(comment), nil
}

// ListCommentsForPost 实现评论列表查询（读降级）。
func (s *commentService) ListCommentsForPost(ctx context.Context, postID string) []*vo.CommentVO {
	comments, err := s.commentRepo.ListCommentsByPostID(ctx, postID)
	if err != nil {
		s.logger.Error("获取帖子评论失败，降级为空列表", zap.Error(err), zap.String("post_id", postID))
		return []*vo.CommentVO{}
	}
	return vo.MapCommentsToCommentVOs(comments)
}
