package entities

import "time"

// User 用户档案实体
// - 表名: users
// - 主键: name (显示名)，无数字代理键；与 Post.Author 做大小写敏感的精确匹配连接
// - 生命周期: 某作者名第一次发帖时隐式创建；之后每次发帖递增经验计数；不支持删除
type User struct {
	// 显示名，主键
	// - 类型: varchar(50)
	// - 注意: 两种不同拼写即两个不同用户，这是对现有数据格式的兼容性约定
	Name string `gorm:"type:varchar(50);primaryKey"`

	// 头像URL
	// - 首次隐式创建时默认为按名字生成的占位头像
	Avatar string `gorm:"type:varchar(255);not null"`

	// 个人简介，可选
	Bio string `gorm:"type:text"`

	// 所在地，可选
	Location string `gorm:"type:varchar(100)"`

	// 邮箱，可选
	Email string `gorm:"type:varchar(100)"`

	// 电话，可选
	Phone string `gorm:"type:varchar(30)"`

	// 擅长领域，有序字符串列表
	// - GORM 标签: serializer:json 以 JSON 数组形式存入 text 列，保持顺序
	Specialties []string `gorm:"type:text;serializer:json"`

	// 经验计数，派生计数器
	// - 首次发帖置 1，之后该作者每发一帖加一；永不递减
	// - 不变式: 仅通过发帖创建的用户满足 experience_count == count(posts where author = name)；
	//   手工编辑过档案的用户可能违反该式，系统不做对账
	// - GORM 标签: index 建立二级索引，贡献排行榜按该字段倒序展示
	ExperienceCount int64 `gorm:"type:int;default:0;index"`

	// 加入时间，首次被发现时设置一次，不可变
	JoinedAt time.Time `gorm:"column:joined_at"`
}
