package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/dependencies"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/events"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/mq/producer"
	"github.com/Xushengqwer/community_service/repo/store"
)

// PostService 定义了帖子相关业务逻辑的接口。
//
// 错误策略（两级）：
//   - 读操作（信息流、按作者查询）在存储故障时降级为空列表，只记日志，
//     不把错误暴露给调用方——浏览页不应因存储故障整页失败。
//   - 写操作（发帖）把存储故障向上传播，由调用方负责用户可见的提示，
//     且不能假定写入已成功。
type PostService interface {
	// CreatePost 处理发布经验帖的业务流程。
	// - 若携带图片文件，先上传到对象存储并取回公开访问 URL。
	// - 帖子插入与作者经验计数维护（用户不存在则隐式建档）在同一个事务中完成，
	//   对外保持"发帖即更新作者档案"的原子语义。
	// - 成功后异步发布 PostCreated 事件。
	// - 返回新帖的 VO（含存储层分配的 ID 与创建时间）。
	CreatePost(ctx context.Context, req *dto.CreatePostRequest, imageFile *multipart.FileHeader) (*vo.PostVO, error)

	// ListFeed 返回信息流：全部帖子按创建时间倒序。
	// - 读降级：存储故障时返回空列表，不返回错误。
	ListFeed(ctx context.Context) []*vo.PostVO

	// ListPostsByAuthor 返回指定作者的全部帖子（顺序不作保证）。
	// - 读降级：存储故障时返回空列表，不返回错误。
	ListPostsByAuthor(ctx context.Context, author string) []*vo.PostVO
}

// postService 是 PostService 接口的具体实现。
type postService struct {
	db        *gorm.DB                        // GORM 数据库实例，主要用于事务管理
	postRepo  store.PostRepository            // 帖子集合的持久化操作
	userRepo  store.UserRepository            // 用户集合的持久化操作（发帖路径的隐式维护）
	cosClient dependencies.COSClientInterface // 对象存储依赖，可为 nil（未配置时禁用文件上传）
	kafkaSvc  producer.CommunityEventProducer // 事件生产者，可为 nil（未配置 broker 时不发事件）
	logger    *core.ZapLogger
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
func NewPostService(
	db *gorm.DB,
	postRepo store.PostRepository,
	userRepo store.UserRepository,
	cosClient dependencies.COSClientInterface,
	kafkaSvc producer.CommunityEventProducer,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		db:        db,
		postRepo:  postRepo,
		userRepo:  userRepo,
		cosClient: cosClient,
		kafkaSvc:  kafkaSvc,
		logger:    logger,
	}
}

// generateImageObjectKey 创建配图在对象存储中的唯一对象键。
// 规则: community/images/YYYYMMDD/{author}_{uuid}.{ext}
func (s *postService) generateImageObjectKey(originalFilename string, author string) string {
	datePrefix := time.Now().Format("20060102")
	extension := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("%s%s/%s_%s%s",
		constant.COSObjectKeyPrefixCommunityImages,
		datePrefix,
		url.PathEscape(author),
		uuid.NewString(),
		extension,
	)
}

// defaultAvatarURL 按显示名生成占位头像 URL（隐式建档时使用）。
func defaultAvatarURL(name string) string {
	return fmt.Sprintf(constant.DefaultAvatarURLTemplate, url.QueryEscape(name))
}

// CreatePost 实现发帖流程。
func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest, imageFile *multipart.FileHeader) (*vo.PostVO, error) {
	// 1. 先处理配图：有文件则上传对象存储，否则沿用调用方给出的已托管 URL。
	imageURL := req.Image
	var uploadedObjectKey string
	if imageFile != nil {
		if s.cosClient == nil {
			return nil, fmt.Errorf("未配置对象存储，无法上传配图文件")
		}
		if imageFile.Size > constant.MaxImageUploadBytes {
			return nil, fmt.Errorf("配图文件过大 (%d 字节)，上限 %d 字节", imageFile.Size, constant.MaxImageUploadBytes)
		}

		file, err := imageFile.Open()
		if err != nil {
			s.logger.Error("打开配图文件失败", zap.String("filename", imageFile.Filename), zap.Error(err))
			return nil, fmt.Errorf("打开配图文件 %s 失败: %w", imageFile.Filename, err)
		}

		contentType := imageFile.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
			s.logger.Warn("未提供配图的内容类型，使用默认值",
				zap.String("filename", imageFile.Filename),
				zap.String("defaultContentType", contentType))
		}

		objectKey := s.generateImageObjectKey(imageFile.Filename, req.Author)
		imageURL, err = s.cosClient.UploadImage(ctx, objectKey, file, imageFile.Size, contentType)
		file.Close()
		if err != nil {
			s.logger.Error("上传配图到对象存储失败",
				zap.String("filename", imageFile.Filename),
				zap.String("objectKey", objectKey),
				zap.Error(err))
			return nil, fmt.Errorf("上传配图 %s 失败: %w", imageFile.Filename, err)
		}
		uploadedObjectKey = objectKey
	}

	// 2. 在同一个事务中插入帖子并维护作者档案。
	// 事务化消除了"插入成功但计数未更新"的中间态：两步要么都生效要么都回滚。
	avatar := req.AuthorAvatar
	if avatar == "" {
		avatar = defaultAvatarURL(req.Author)
	}

	post := &entities.Post{
		ID:            uuid.NewString(), // 存储层分配的不透明唯一标识
		Author:        req.Author,
		AuthorAvatar:  avatar,
		Title:         req.Title,
		Content:       req.Content,
		Image:         imageURL,
		Type:          enums.PostType(req.Type),
		CropType:      req.CropType,
		Treatment:     req.Treatment,
		Effectiveness: enums.Effectiveness(req.Effectiveness),
		Likes:         0, // 初始计数器
		CommentCount:  0,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.postRepo.CreatePost(ctx, tx, post); repoErr != nil {
			return fmt.Errorf("创建帖子失败: %w", repoErr)
		}
		// 作者不存在则建档 (experience_count = 1)，存在则仅把计数加一。
		if repoErr := s.userRepo.UpsertOnNewPost(ctx, tx, req.Author, avatar); repoErr != nil {
			return fmt.Errorf("维护作者档案失败: %w", repoErr)
		}
		return nil // 提交事务
	})
	if err != nil {
		s.logger.Error("发帖事务失败", zap.Error(err), zap.String("author", req.Author))
		// 数据库失败后清理已成为孤儿的 COS 对象；清理失败只记日志，不掩盖原始错误。
		if uploadedObjectKey != "" {
			if cleanupErr := s.cosClient.DeleteImage(context.Background(), uploadedObjectKey); cleanupErr != nil {
				s.logger.Error("清理孤儿配图失败", zap.String("objectKey", uploadedObjectKey), zap.Error(cleanupErr))
			}
		}
		return nil, err
	}

	// --- 事务成功 ---

	// 3. 异步发布 PostCreated 事件（配置了 broker 时）。
	if s.kafkaSvc != nil {
		postData := events.PostData{
			ID:            post.ID,
			Author:        post.Author,
			Title:         post.Title,
			Content:       post.Content,
			Image:         post.Image,
			Type:          string(post.Type),
			CropType:      post.CropType,
			Treatment:     post.Treatment,
			Effectiveness: string(post.Effectiveness),
			CreatedAt:     post.CreatedAt.UnixMilli(),
		}
		go func(pd events.PostData) {
			bgCtx := context.Background() // 事件发布独立于请求生命周期
			if kafkaErr := s.kafkaSvc.SendPostCreatedEvent(bgCtx, pd); kafkaErr != nil {
				s.logger.Error("发布帖子创建事件失败", zap.Error(kafkaErr), zap.String("post_id", pd.ID))
			}
		}(postData)
	}

	// 4. 返回 VO（CreatedAt 已由 GORM 在插入时填充）。
	return vo.NewPostVOFromEntity(post), nil
}

// ListFeed 实现信息流查询（读降级）。
func (s *postService) ListFeed(ctx context.Context) []*vo.PostVO {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		// 浏览页永不因存储故障整页失败：记录诊断信息后返回空列表。
		s.logger.Error("获取信息流失败，降级为空列表", zap.Error(err))
		return []*vo.PostVO{}
	}
	return vo.MapPostsToPostVOs(posts)
}

// ListPostsByAuthor 实现按作者查询（读降级）。
func (s *postService) ListPostsByAuthor(ctx context.Context, author string) []*vo.PostVO {
	posts, err := s.postRepo.ListPostsByAuthor(ctx, author)
	if err != nil {
		s.logger.Error("按作者获取帖子失败，降级为空列表", zap.Error(err), zap.String("author", author))
		return []*vo.PostVO{}
	}
	return vo.MapPostsToPostVOs(posts)
}
