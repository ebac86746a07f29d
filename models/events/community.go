package events

import "time"

// PostData 帖子事件的核心载荷
// - 字段与 entities.Post 对齐，时间使用毫秒时间戳便于下游消费
type PostData struct {
	ID            string `json:"id"`
	Author        string `json:"author"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Image         string `json:"image,omitempty"`
	Type          string `json:"type"`
	CropType      string `json:"crop_type,omitempty"`
	Treatment     string `json:"treatment,omitempty"`
	Effectiveness string `json:"effectiveness,omitempty"`
	CreatedAt     int64  `json:"created_at"` // UnixMilli
}

// CommentData 评论事件的核心载荷
type CommentData struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"` // UnixMilli
}

// PostCreatedEvent 帖子创建成功后发布的事件
// - 供下游服务（如搜索索引、推荐）同步新帖数据
type PostCreatedEvent struct {
	EventID   string    `json:"event_id"`  // 事件唯一ID
	Timestamp time.Time `json:"timestamp"` // 事件产生时间
	Post      PostData  `json:"post"`
}

// CommentCreatedEvent 评论创建成功后发布的事件
type CommentCreatedEvent struct {
	EventID   string      `json:"event_id"`
	Timestamp time.Time   `json:"timestamp"`
	Comment   CommentData `json:"comment"`
}
