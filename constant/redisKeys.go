package constant

// Redis Key 相关常量 (导出)
const (
	// UserRankKey 是社区贡献排行榜的 Key 名称。
	// 这是一个 Sorted Set (ZSet)，成员是用户显示名，分数是经验计数 (experience_count)。
	// 由定时任务从数据库全量刷新，作为排行榜页的快照数据源。
	// Redis 类型: Sorted Set
	// 示例成员与分数: Member="Sarah Johnson", Score=12; Member="李明", Score=8
	UserRankKey = "community:user_rank"

	// UserProfileHashKey 是排行榜用户档案快照的 Hash Key 名称。
	// Field 为用户显示名，Value 为 JSON 序列化后的用户档案，
	// 与 UserRankKey 一同由定时任务刷新，避免排行榜页逐个回表。
	// Redis 类型: Hash
	// 示例字段与值: Field="Sarah Johnson", Value="{\"name\":\"Sarah Johnson\",\"experience_count\":12,...}"
	UserProfileHashKey = "community:user_profiles"

	// LatestFeedKey 是最新信息流快照的 Key 名称。
	// 存储 JSON 序列化后的帖子列表（按创建时间倒序的前 N 条），由定时任务刷新。
	// 缓存未命中或反序列化失败时，调用方回源到记录存储。
	// Redis 类型: String
	LatestFeedKey = "community:latest_feed"
)
