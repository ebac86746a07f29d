package config

// KafkaConfig 社区事件发布的配置。
// - Brokers 为空时服务不初始化生产者，写操作照常工作，只是不产生事件。
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

type Topics struct {
	PostCreated    string `mapstructure:"postCreated" yaml:"postCreated"`       // 帖子创建事件主题
	CommentCreated string `mapstructure:"commentCreated" yaml:"commentCreated"` // 评论创建事件主题
}
