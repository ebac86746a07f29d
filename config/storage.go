package config

// 存储后端标识。两种后端满足同一套仓库契约，启动时二选一。
const (
	// StorageBackendLocal 本地嵌入式存储 (SQLite 文件库)，单机/离线场景的默认选择。
	StorageBackendLocal = "local"
	// StorageBackendRemote 远程表存储 (MySQL，支持读写分离)，托管部署时使用。
	StorageBackendRemote = "remote"
)

// StorageConfig 选择记录存储的后端实现。
type StorageConfig struct {
	// Backend 取值 "local" 或 "remote"；为空时默认 "local"。
	Backend string `mapstructure:"backend" json:"backend" yaml:"backend"`
}

// SQLiteConfig 本地嵌入式存储的配置。
type SQLiteConfig struct {
	// Path 是数据库文件路径（例如 "data/community.db"）。
	// 特殊值 "file::memory:?cache=shared" 可用于测试场景的内存库。
	Path string `mapstructure:"path" json:"path" yaml:"path"`

	// SchemaVersion 是期望的模式版本，写入 SQLite 的 PRAGMA user_version。
	// 打开时版本落后才执行迁移；同名同版本的重复打开是幂等的空操作。
	// 版本只允许递增，迁移只做加法（新表/新列/新索引），不破坏既有集合的数据。
	SchemaVersion int `mapstructure:"schemaVersion" json:"schemaVersion" yaml:"schemaVersion"`

	// BusyTimeoutMs 是 SQLite busy_timeout（毫秒），缓解单文件库上的写锁竞争。
	BusyTimeoutMs int `mapstructure:"busyTimeoutMs" json:"busyTimeoutMs" yaml:"busyTimeoutMs"`
}
