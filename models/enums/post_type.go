package enums

// PostType 帖子类型的变体标签
// - 以字符串形式存储，与既有数据（本地库/远程库）中的取值保持一致
type PostType string

const (
	// PostTypeDisease 病害经验帖
	PostTypeDisease PostType = "disease"
	// PostTypePesticide 农药经验帖
	PostTypePesticide PostType = "pesticide"
)

// IsValid 校验类型取值是否合法
func (t PostType) IsValid() bool {
	return t == PostTypeDisease || t == PostTypePesticide
}
