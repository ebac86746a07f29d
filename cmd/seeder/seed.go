package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/service"
)

// cropTypes 与 treatments 用于生成贴近真实农事场景的随机帖子。
var cropTypes = []string{"Rice", "Wheat", "Maize", "Tomato", "Potato", "Cotton", "Soybean"}

var treatments = []string{
	"Organic Fungicide",
	"Copper Spray",
	"Neem Oil",
	"Crop Rotation",
	"Improved Drainage",
	"Bt Insecticide",
}

var effectivenessLevels = []string{"high", "medium", "low"}

// SeedSamplePostIfEmpty 在帖子表为空时写入内置示例帖，保证新装环境首屏有内容。
func SeedSamplePostIfEmpty(ctx context.Context, db *gorm.DB, postSvc service.PostService, logger *core.ZapLogger) {
	var count int64
	if err := db.WithContext(ctx).Model(&entities.Post{}).Count(&count).Error; err != nil {
		logger.Error("检查帖子表是否为空失败，跳过示例帖写入", zap.Error(err))
		return
	}
	if count > 0 {
		logger.Info("帖子表非空，跳过示例帖写入", zap.Int64("count", count))
		return
	}

	sampleReq := &dto.CreatePostRequest{
		Author:        "Sarah Johnson",
		Title:         "Effective Treatment for Rice Blast Disease",
		Content:       "I successfully treated rice blast using a combination of organic fungicides and improved drainage. Here's my experience...",
		Image:         "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?w=800&h=600&fit=crop",
		Type:          "disease",
		CropType:      "Rice",
		Treatment:     "Organic Fungicide",
		Effectiveness: "high",
	}
	if _, err := postSvc.CreatePost(ctx, sampleReq, nil); err != nil {
		logger.Error("写入示例帖失败", zap.Error(err))
		return
	}
	logger.Info("示例帖写入成功", zap.String("title", sampleReq.Title))
}

// Seed 通过服务层批量生成测试帖子，并为部分帖子追加随机评论。
func Seed(ctx context.Context, postSvc service.PostService, commentSvc service.CommentService, logger *core.ZapLogger, numPosts int) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("数量", numPosts))

	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			author := gofakeit.Name()
			postType := "disease"
			if gofakeit.Bool() {
				postType = "pesticide"
			}

			createReq := &dto.CreatePostRequest{
				Author:        author,
				Title:         gofakeit.Sentence(gofakeit.Number(5, 12)),
				Content:       gofakeit.Paragraph(2, 4, 15, "\n\n"),
				Image:         gofakeit.ImageURL(800, 600),
				Type:          postType,
				CropType:      cropTypes[gofakeit.Number(0, len(cropTypes)-1)],
				Treatment:     treatments[gofakeit.Number(0, len(treatments)-1)],
				Effectiveness: effectivenessLevels[gofakeit.Number(0, len(effectivenessLevels)-1)],
			}

			resp, err := postSvc.CreatePost(ctx, createReq, nil)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.String("author", createReq.Author))
				return
			}
			logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, numPosts),
				zap.String("post_id", resp.ID),
				zap.String("title", resp.Title))

			// 为每篇帖子追加 0-3 条评论，顺带覆盖评论计数路径。
			for c := 0; c < gofakeit.Number(0, 3); c++ {
				commentReq := &dto.CreateCommentRequest{
					PostID:  resp.ID,
					Author:  gofakeit.Name(),
					Content: gofakeit.Sentence(gofakeit.Number(5, 20)),
				}
				if _, commentErr := commentSvc.AddComment(ctx, commentReq); commentErr != nil {
					logger.Error("创建评论失败", zap.Error(commentErr), zap.String("post_id", resp.ID))
				}
			}
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}
