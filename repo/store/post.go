package store

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
)

// PostRepository 定义了帖子集合的持久化操作接口。
// - 同一份实现同时服务本地库 (SQLite) 与远程库 (MySQL)：两者仅在连接初始化时
//   选择不同的 Dialector，仓库层的操作契约完全一致。
// - 写方法额外接收 db *gorm.DB，使服务层可以把"插入帖子 + 用户经验计数"或
//   "插入评论 + 帖子评论计数"放进同一个事务作用域。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录。
	// - 帖子ID、创建时间、两个计数器均已由服务层/GORM 赋好初值。
	// - 写操作：存储故障直接向上传播。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// ListPosts 返回全部帖子，按创建时间倒序（信息流顺序）。
	// - 读操作：存储故障由服务层降级为空列表，仓库层只负责如实返回错误。
	ListPosts(ctx context.Context) ([]*entities.Post, error)

	// ListPostsByAuthor 返回指定作者的全部帖子。
	// - 作者名大小写敏感精确匹配；顺序不作保证（按索引顺序返回）。
	ListPostsByAuthor(ctx context.Context, author string) ([]*entities.Post, error)

	// GetPostByID 根据单个 ID 检索帖子。
	// - 如果未找到帖子，返回 commonerrors.ErrRepoNotFound。
	GetPostByID(ctx context.Context, id string) (*entities.Post, error)

	// IncrementCommentCount 将指定帖子的评论计数原子地加一。
	// - 返回值 found 表示帖子是否存在；帖子不存在时不报错（孤儿评论被接受），
	//   调用方据此决定是否记录日志。
	IncrementCommentCount(ctx context.Context, db *gorm.DB, postID string) (found bool, err error)
}

// postRepository 是 PostRepository 接口的 GORM 实现。
type postRepository struct {
	db     *gorm.DB        // GORM 数据库实例，用于读路径
	logger *core.ZapLogger // 日志记录器实例
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost 实现帖子的插入操作。
func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	// 使用传入的 db 对象（通常为事务对象 tx）执行数据库操作。
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		// 在仓库层直接返回数据库错误，由服务层决定如何处理或包装。
		return err
	}
	return nil
}

// ListPosts 实现信息流查询：全部帖子按创建时间倒序。
func (r *postRepository) ListPosts(ctx context.Context) ([]*entities.Post, error) {
	var posts []*entities.Post

	// created_at 上有二级索引，倒序扫描即信息流顺序。
	// ID 作为次级排序键，确保同一时间戳下的顺序稳定。
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&posts).Error
	if err != nil {
		r.logger.Error("查询信息流帖子列表失败", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

// ListPostsByAuthor 实现按作者查询帖子。
func (r *postRepository) ListPostsByAuthor(ctx context.Context, author string) ([]*entities.Post, error) {
	var posts []*entities.Post

	err := r.db.WithContext(ctx).
		Where("author = ?", author).
		Find(&posts).Error
	if err != nil {
		r.logger.Error("按作者查询帖子列表失败",
			zap.Error(err),
			zap.String("author", author),
		)
		return nil, err
	}
	return posts, nil
}

// GetPostByID 实现根据单个 ID 获取帖子。
func (r *postRepository) GetPostByID(ctx context.Context, id string) (*entities.Post, error) {
	var post entities.Post

	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 未找到属于正常情况（例如评论指向的帖子不存在），记录后返回统一的未找到错误。
			r.logger.Warn("根据 ID 获取帖子未找到", zap.String("postID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取帖子数据库查询失败", zap.String("postID", id), zap.Error(err))
		return nil, err
	}
	return &post, nil
}

// IncrementCommentCount 实现评论计数的原子自增。
func (r *postRepository) IncrementCommentCount(ctx context.Context, db *gorm.DB, postID string) (bool, error) {
	// 使用 SQL 表达式在数据库内完成读-改-写，避免取回实体再写回造成的丢失更新。
	result := db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		UpdateColumn("comments", gorm.Expr("comments + ?", 1))

	if result.Error != nil {
		r.logger.Error("递增帖子评论计数失败",
			zap.Error(result.Error),
			zap.String("postID", postID),
		)
		return false, result.Error
	}

	// RowsAffected == 0 表示帖子不存在：评论仍然落库，这是被接受的孤儿评论结果。
	return result.RowsAffected > 0, nil
}
