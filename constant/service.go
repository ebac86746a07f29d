package constant

// 服务标识，用于链路追踪与路由中间件
const (
	ServiceName    = "community-service"
	ServiceVersion = "1.0.0"
)

// COSObjectKeyPrefixCommunityImages 是社区帖子配图在 COS 中的对象键前缀。
// 完整对象键形如: community/images/20240220/{author}_{uuid}.jpg
const COSObjectKeyPrefixCommunityImages = "community/images/"

// MaxImageUploadBytes 是帖子配图上传的大小上限 (5MB)。
// 超限的文件在进入对象存储之前即被拒绝。
const MaxImageUploadBytes = 5 * 1024 * 1024

// DefaultAvatarURLTemplate 是隐式建档用户的占位头像模板。
// %s 为 URL 编码后的显示名，由头像服务按名字生成随机底色的首字母头像。
const DefaultAvatarURLTemplate = "https://ui-avatars.com/api/?name=%s&background=random"

// 排行榜/信息流缓存刷新相关常量
const (
	// LeaderboardCacheCronSpec 是排行榜与信息流快照刷新任务的 cron 表达式（分钟级精度）。
	LeaderboardCacheCronSpec = "@every 5m"

	// LeaderboardCacheSize 是排行榜快照保留的用户数量上限。
	LeaderboardCacheSize = 100

	// LatestFeedCacheSize 是信息流快照保留的帖子数量上限。
	LatestFeedCacheSize = 50
)
