package config

import "github.com/Xushengqwer/go-common/config"

// CommunityConfig 是服务的聚合配置，由 core.LoadConfig 从 YAML + 环境变量载入。
type CommunityConfig struct {
	ZapConfig     config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig  config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig  config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	StorageConfig StorageConfig        `mapstructure:"storageConfig" json:"storageConfig" yaml:"storageConfig"`
	SQLiteConfig  SQLiteConfig         `mapstructure:"sqliteConfig" json:"sqliteConfig" yaml:"sqliteConfig"`
	MySQLConfig   MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig   RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig   KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig     COSConfig            `mapstructure:"communityImagesCosConfig" json:"communityImagesCosConfig" yaml:"communityImagesCosConfig"`
}
