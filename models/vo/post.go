package vo

import (
	"time"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// PostVO 定义了经验帖的响应数据结构
type PostVO struct {
	ID            string              `json:"id"`                      // 帖子ID
	Author        string              `json:"author"`                  // 作者显示名
	AuthorAvatar  string              `json:"author_avatar"`           // 作者头像快照
	Title         string              `json:"title"`                   // 标题
	Content       string              `json:"content"`                 // 正文
	Image         string              `json:"image,omitempty"`         // 配图 URL
	Type          enums.PostType      `json:"type"`                    // 帖子类型 (disease | pesticide)
	CropType      string              `json:"crop_type,omitempty"`     // 作物种类
	Treatment     string              `json:"treatment,omitempty"`     // 处理方案
	Effectiveness enums.Effectiveness `json:"effectiveness,omitempty"` // 效果评价 (high | medium | low)
	Likes         int64               `json:"likes"`                   // 点赞数
	CommentCount  int64               `json:"comments"`                // 评论数（派生计数器）
	CreatedAt     time.Time           `json:"created_at"`              // 创建时间
}

// ListPostsResponse 定义信息流/按作者查询的响应结构
type ListPostsResponse struct {
	Posts []*PostVO `json:"posts"` // 帖子列表
	Total int       `json:"total"` // 本次返回的帖子数量
}

// NewPostVOFromEntity 将帖子实体转换为响应 VO
func NewPostVOFromEntity(post *entities.Post) *PostVO {
	if post == nil {
		return nil
	}
	return &PostVO{
		ID:            post.ID,
		Author:        post.Author,
		AuthorAvatar:  post.AuthorAvatar,
		Title:         post.Title,
		Content:       post.Content,
		Image:         post.Image,
		Type:          post.Type,
		CropType:      post.CropType,
		Treatment:     post.Treatment,
		Effectiveness: post.Effectiveness,
		Likes:         post.Likes,
		CommentCount:  post.CommentCount,
		CreatedAt:     post.CreatedAt,
	}
}

// MapPostsToPostVOs 是一个辅助函数，用于将帖子实体列表转换为响应VO列表。
func MapPostsToPostVOs(posts []*entities.Post) []*PostVO {
	if len(posts) == 0 {
		return []*PostVO{} // 返回空切片而不是nil，便于前端处理
	}
	vos := make([]*PostVO, 0, len(posts))
	for _, post := range posts {
		if post == nil { // 安全检查
			continue
		}
		vos = append(vos, NewPostVOFromEntity(post))
	}
	return vos
}
