package dto

// CreateCommentRequest 定义了发表评论的请求数据结构
// - PostID 不做存在性校验：指向不存在帖子的评论仍会落库（接受孤儿评论），
//   只是对应帖子的评论计数不会变化
type CreateCommentRequest struct {
	PostID  string `json:"post_id" form:"post_id" binding:"required,uuid"`     // 所属帖子ID，必填，UUID 格式
	Author  string `json:"author" form:"author" binding:"required,max=50"`     // 评论者显示名，必填
	Content string `json:"content" form:"content" binding:"required,max=1000"` // 评论内容，必填
}
