package entities

import (
	"time"

	"github.com/Xushengqwer/community_service/models/enums"
)

// Post 经验分享帖子实体
// - 使用场景: 社区信息流页的数据，存储农户分享的病害/农药使用经验
// - 表名: posts (GORM 默认使用结构体名复数形式)
// - 生命周期: 创建后不可修改，仅 comments 计数器会随评论插入递增；不支持删除
type Post struct {
	// 帖子ID，主键，服务端生成的 UUID
	// - 类型: char(36)，UUID 格式（36个字符），创建时由服务层分配，之后不可变
	// - 设计意图: 使用不透明的全局唯一标识，本地库与远程库的数据可以互相迁移
	ID string `gorm:"type:char(36);primaryKey"`

	// 作者显示名，自然外键，关联 users 表的 name 主键
	// - 类型: varchar(50)，与 User.Name 保持一致
	// - GORM 标签: index 建立二级索引，支持按作者查询帖子列表
	// - 注意: 显示名大小写敏感精确匹配；同一人的两种拼写会被视为两个用户
	//   （沿用现有数据的约定，未引入代理键）
	Author string `gorm:"type:varchar(50);not null;index"`

	// 作者头像快照，存储发帖时作者头像的URL
	// - 类型: varchar(255)
	// - 设计意图: 信息流直接展示头像，避免逐条回表查询用户记录
	AuthorAvatar string `gorm:"type:varchar(255)"`

	// 标题，必填
	Title string `gorm:"type:varchar(255);not null"`

	// 正文内容，支持多行文本
	Content string `gorm:"type:text;not null"`

	// 配图，URL 或对象存储上传后返回的访问地址
	// - 类型: varchar(1023)，URL 可能较长
	Image string `gorm:"type:varchar(1023)"`

	// 帖子类型，病害经验或农药经验
	// - 类型: varchar(16)，取值见 enums.PostType (disease | pesticide)
	// - GORM 标签: index 建立二级索引，支持按类型筛选信息流
	Type enums.PostType `gorm:"type:varchar(16);not null;index"`

	// 作物种类，可选的领域元数据（例如 "Rice"、"Wheat"）
	CropType string `gorm:"type:varchar(50)"`

	// 处理方案，可选（例如 "Organic Fungicide"）
	Treatment string `gorm:"type:varchar(255)"`

	// 效果评价，可选，取值见 enums.Effectiveness (high | medium | low)
	Effectiveness enums.Effectiveness `gorm:"type:varchar(8)"`

	// 点赞数，创建时为 0
	// - 注意: 前端展示该字段，但点赞的持久化入口尚未实现，目前不存在递增路径
	Likes int64 `gorm:"type:int;default:0"`

	// 评论数，派生计数器
	// - 每成功插入一条指向本帖的评论，该值恰好加一；永不递减
	// - 不变式: comments == count(comments where post_id = id)，由写路径增量维护而非读时重算
	CommentCount int64 `gorm:"column:comments;type:int;default:0"`

	// 创建时间，存储层分配，不可变
	// - GORM 标签: index 建立二级索引，信息流按创建时间倒序展示
	CreatedAt time.Time `gorm:"index"`
}
