package vo

import (
	"time"

	"github.com/Xushengqwer/community_service/models/entities"
)

// CommentVO 定义了评论的响应数据结构
type CommentVO struct {
	ID        string    `json:"id"`         // 评论ID
	PostID    string    `json:"post_id"`    // 所属帖子ID
	Author    string    `json:"author"`     // 评论者显示名
	Content   string    `json:"content"`    // 评论内容
	CreatedAt time.Time `json:"created_at"` // 创建时间
}

// ListCommentsResponse 定义某帖评论列表的响应结构
type ListCommentsResponse struct {
	Comments []*CommentVO `json:"comments"` // 评论列表，按创建时间倒序
	Total    int          `json:"total"`    // 本次返回的评论数量
}

// NewCommentVOFromEntity 将单个评论实体转换为响应VO。
func NewCommentVOFromEntity(comment *entities.Comment) *CommentVO {
	if comment == nil {
		return nil
	}
	return &CommentVO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Author:    comment.Author,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

// MapCommentsToCommentVOs 将评论实体列表转换为响应VO列表。
func MapCommentsToCommentVOs(comments []*entities.Comment) []*CommentVO {
	if len(comments) == 0 {
		return []*CommentVO{}
	}
	vos := make([]*CommentVO, 0, len(comments))
	for _, comment := range comments {
		if comment == nil {
			continue
		}
		vos = append(vos, NewCommentVOFromEntity(comment))
	}
	return vos
}
