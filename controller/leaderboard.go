package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/service"
)

// LeaderboardController 定义排行榜与信息流快照控制器的结构体
type LeaderboardController struct {
	leaderboardService service.LeaderboardService
}

// NewLeaderboardController 构造函数，用于创建 LeaderboardController 实例
func NewLeaderboardController(leaderboardService service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{
		leaderboardService: leaderboardService,
	}
}

// GetTopUsers 处理获取经验排行榜的 HTTP 请求
// @Summary      获取经验排行榜
// @Description  返回按经验帖数量排序的前 N 名用户。优先读缓存快照，未命中时回源数据库。
// @Tags         leaderboard (排行榜)
// @Accept       json
// @Produce      json
// @Param        limit query int false "返回数量上限" format(int32) minimum(1) maximum(100) default(100)
// @Success      200 {object} vo.ListUsersResponseWrapper "成功响应，包含排行榜用户列表"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Router       /api/v1/community/leaderboard/users [get]
func (ctrl *LeaderboardController) GetTopUsers(c *gin.Context) {
	limit := constant.LeaderboardCacheSize
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 limit 参数: "+limitStr)
			return
		}
		limit = parsed
	}

	users := ctrl.leaderboardService.GetTopUsers(c.Request.Context(), limit)
	response.RespondSuccess(c, &vo.ListUsersResponse{Users: users, Total: len(users)}, "排行榜获取成功")
}

// GetLatestFeed 处理获取最新信息流快照的 HTTP 请求
// @Summary      获取最新信息流快照
// @Description  返回由后台任务定期刷新的最新帖子快照（创建时间倒序），未命中时回源数据库。
// @Tags         leaderboard (排行榜)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.ListPostsResponseWrapper "成功响应，包含最新帖子列表"
// @Router       /api/v1/community/leaderboard/feed [get]
func (ctrl *LeaderboardController) GetLatestFeed(c *gin.Context) {
	posts := ctrl.leaderboardService.GetLatestFeed(c.Request.Context())
	response.RespondSuccess(c, &vo.ListPostsResponse{Posts: posts, Total: len(posts)}, "最新信息流获取成功")
}

// RegisterRoutes 注册 LeaderboardController 的路由
func (ctrl *LeaderboardController) RegisterRoutes(group *gin.RouterGroup) {
	leaderboard := group.Group("/leaderboard")
	{
		leaderboard.GET("/users", ctrl.GetTopUsers)  // GET /api/v1/community/leaderboard/users
		leaderboard.GET("/feed", ctrl.GetLatestFeed) // GET /api/v1/community/leaderboard/feed
	}
}
