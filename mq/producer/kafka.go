package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/models/events"
)

// CommunityEventProducer 定义了社区事件发布接口。
// - 服务层依赖该接口而非具体实现，便于在测试中用空实现替换。
type CommunityEventProducer interface {
	// SendPostCreatedEvent 发布帖子创建事件。
	SendPostCreatedEvent(ctx context.Context, postData events.PostData) error
	// SendCommentCreatedEvent 发布评论创建事件。
	SendCommentCreatedEvent(ctx context.Context, commentData events.CommentData) error
	// Close 释放底层连接。
	Close() error
}

// KafkaProducer 社区事件的 Kafka 生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// sendEvent 序列化事件并发送到指定 Kafka 主题
func (p *KafkaProducer) sendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("成功发送 Kafka 消息", zap.String("topic", topic))
	}
	return err
}

// SendPostCreatedEvent 发布帖子创建事件到 PostCreated 主题
// - 意图: 将新发布的经验帖广播给下游（搜索索引、推荐等）
func (p *KafkaProducer) SendPostCreatedEvent(ctx context.Context, postData events.PostData) error {
	event := events.PostCreatedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Post:      postData,
	}
	return p.sendEvent(ctx, p.topics.PostCreated, event)
}

// SendCommentCreatedEvent 发布评论创建事件到 CommentCreated 主题
func (p *KafkaProducer) SendCommentCreatedEvent(ctx context.Context, commentData events.CommentData) error {
	event := events.CommentCreatedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Comment:   commentData,
	}
	return p.sendEvent(ctx, p.topics.CommentCreated, event)
}

// Close 关闭底层 writer，优雅关停时调用。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
