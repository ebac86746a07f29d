// dependencies/cos_client.go
package dependencies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"github.com/tencentyun/cos-go-sdk-v5"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/community_service/config"
)

// COSClientInterface 定义了帖子配图对象存储助手需要实现的方法。
// - 这是远程持久化变体的图片上传路径；服务层在收到图片文件时调用，
//   上传成功后把返回的公开访问 URL 写入帖子的 image 字段。
type COSClientInterface interface {
	// UploadImage 从 io.Reader 上传配图，返回其公开可访问的 URL。
	// 调用方负责生成合适的 objectKey 并校验文件大小。
	UploadImage(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
	// DeleteImage 从对象存储删除一张配图（例如数据库写入失败后的清理）。
	DeleteImage(ctx context.Context, objectKey string) error
}

type cosClient struct {
	client              *cos.Client
	publicAccessURLBase *url.URL // 用于拼接对象公开访问URL的基础部分
	logger              *core.ZapLogger
}

// InitCOS 初始化腾讯云 COS 客户端。
func InitCOS(cfg *appConfig.COSConfig, logger *core.ZapLogger) (COSClientInterface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("COS 配置不能为nil")
	}
	if cfg.SecretID == "" || cfg.SecretKey == "" || cfg.BucketName == "" || cfg.AppID == "" || cfg.Region == "" {
		logger.Error("COS 配置不完整", zap.Any("配置详情", cfg))
		return nil, fmt.Errorf("COS 配置不完整，缺少关键字段 (SecretID, SecretKey, BucketName, AppID, Region)")
	}

	sdkBucketURLStr := fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region)
	sdkURL, err := url.Parse(sdkBucketURLStr)
	if err != nil {
		logger.Error("解析 COS 存储桶 URL 失败", zap.String("url", sdkBucketURLStr), zap.Error(err))
		return nil, fmt.Errorf("解析 COS 存储桶 URL '%s' 失败: %w", sdkBucketURLStr, err)
	}

	// 公开访问基础 URL：优先使用配置的 CDN/自定义域名，否则公有读桶的标准 URL
	// 与 SDK 操作 URL 相同。
	publicURLBase := sdkURL
	if cfg.BaseURL != "" {
		pu, err := url.Parse(cfg.BaseURL)
		if err != nil {
			logger.Error("解析配置的 COS 公共访问 BaseURL 失败", zap.String("baseURL", cfg.BaseURL), zap.Error(err))
			return nil, fmt.Errorf("解析 COS 公共访问 BaseURL '%s' 失败: %w", cfg.BaseURL, err)
		}
		publicURLBase = pu
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: sdkURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	})

	logger.Info("COS 客户端初始化成功",
		zap.String("存储桶名称", cfg.BucketName),
		zap.String("地域", cfg.Region),
		zap.String("公共访问基础URL", publicURLBase.String()),
	)

	return &cosClient{
		client:              client,
		publicAccessURLBase: publicURLBase,
		logger:              logger,
	}, nil
}

// buildPublicObjectURL 构建对象的完整公共访问URL。
func (c *cosClient) buildPublicObjectURL(objectKey string) string {
	basePath := c.publicAccessURLBase.Path
	if basePath != "/" && !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	finalURL := *c.publicAccessURLBase
	finalURL.Path = basePath + strings.TrimPrefix(objectKey, "/")
	return finalURL.String()
}

// UploadImage 实现配图上传。
func (c *cosClient) UploadImage(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	c.logger.Info("开始上传配图到 COS",
		zap.String("对象键", objectKey),
		zap.Int64("文件大小", size),
		zap.String("内容类型", contentType),
	)
	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: size,
		},
	}

	resp, err := c.client.Object.Put(ctx, objectKey, reader, opts)
	if err != nil {
		c.logger.Error("COS 配图上传 API 调用失败", zap.String("对象键", objectKey), zap.Error(err))
		return "", fmt.Errorf("上传配图 '%s' 到 COS 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errMsgBytes, _ := io.ReadAll(resp.Body)
		c.logger.Error("COS 配图上传返回非200状态码",
			zap.String("对象键", objectKey),
			zap.Int("状态码", resp.StatusCode),
			zap.String("响应信息", string(errMsgBytes)),
		)
		return "", fmt.Errorf("COS 配图上传失败，状态码: %d, 响应: %s", resp.StatusCode, string(errMsgBytes))
	}

	publicURL := c.buildPublicObjectURL(objectKey)
	c.logger.Info("COS 配图上传成功", zap.String("对象键", objectKey), zap.String("公开访问URL", publicURL))
	return publicURL, nil
}

// DeleteImage 实现配图删除。
func (c *cosClient) DeleteImage(ctx context.Context, objectKey string) error {
	resp, err := c.client.Object.Delete(ctx, objectKey)
	if err != nil {
		c.logger.Error("COS 配图删除 API 调用失败", zap.String("对象键", objectKey), zap.Error(err))
		return fmt.Errorf("从 COS 删除配图 '%s' 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		errMsgBytes, _ := io.ReadAll(resp.Body)
		c.logger.Error("COS 配图删除返回非成功状态码",
			zap.String("对象键", objectKey),
			zap.Int("状态码", resp.StatusCode),
			zap.String("响应信息", string(errMsgBytes)),
		)
		return fmt.Errorf("COS 配图删除失败，状态码: %d, 响应: %s", resp.StatusCode, string(errMsgBytes))
	}
	c.logger.Info("COS 配图删除成功", zap.String("对象键", objectKey))
	return nil
}
