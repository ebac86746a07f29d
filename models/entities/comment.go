package entities

import "time"

// Comment 帖子评论实体
// - 表名: comments
// - 关系: 通过 PostID 关联 posts 表，但不建立数据库级外键约束；
//   若指向的帖子不存在，评论仍然允许落库（接受孤儿评论，而非报错）
// - 生命周期: 创建后不可变；不支持删除
type Comment struct {
	// 评论ID，主键，服务端生成的 UUID
	ID string `gorm:"type:char(36);primaryKey"`

	// 所属帖子ID
	// - 类型: char(36)，与 Post.ID 一致
	// - GORM 标签: index 建立二级索引，支持按帖子查询评论列表
	// - 注意: 无引用完整性约束，悬空引用是被接受的结果
	PostID string `gorm:"type:char(36);not null;index"`

	// 评论者显示名
	Author string `gorm:"type:varchar(50);not null"`

	// 评论内容
	Content string `gorm:"type:text;not null"`

	// 创建时间，存储层分配，不可变
	// - GORM 标签: index 建立二级索引，评论列表按创建时间倒序展示
	CreatedAt time.Time `gorm:"index"`
}
