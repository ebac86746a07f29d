package dto

// CreatePostRequest 定义了发布经验帖的请求数据结构
// - 添加了 binding 标签用于输入验证
// - 服务端字段 (id / created_at / likes / comments) 不由调用方提供，由存储层分配
type CreatePostRequest struct {
	Author        string `json:"author" form:"author" binding:"required,max=50"`                            // 作者显示名，必填，最大50字符
	AuthorAvatar  string `json:"author_avatar" form:"author_avatar" binding:"omitempty,url|uri"`            // 作者头像 URL，可选
	Title         string `json:"title" form:"title" binding:"required,max=255"`                             // 帖子标题，必填
	Content       string `json:"content" form:"content" binding:"required,max=2000"`                        // 帖子内容，必填
	Image         string `json:"image" form:"image" binding:"omitempty,url|uri"`                            // 已托管的配图 URL，可选；与上传文件二选一
	Type          string `json:"type" form:"type" binding:"required,oneof=disease pesticide"`               // 帖子类型，必填
	CropType      string `json:"crop_type" form:"crop_type" binding:"omitempty,max=50"`                     // 作物种类，可选
	Treatment     string `json:"treatment" form:"treatment" binding:"omitempty,max=255"`                    // 处理方案，可选
	Effectiveness string `json:"effectiveness" form:"effectiveness" binding:"omitempty,oneof=high medium low"` // 效果评价，可选

	// 注意：配图文件不在 DTO 中，它作为 multipart/form-data 的 "image_file" 部分直接上传，
	// 控制器取出 *multipart.FileHeader 后传给服务层。
}

// ListPostsByAuthorRequest 定义按作者查询帖子列表的请求数据结构
type ListPostsByAuthorRequest struct {
	Author string `json:"author" form:"author" binding:"required,max=50"` // 作者显示名，必填 (form tag 用于 query 参数绑定)
}
