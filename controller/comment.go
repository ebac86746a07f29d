package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/service"
)

// CommentController 定义评论控制器的结构体
type CommentController struct {
	commentService service.CommentService
}

// NewCommentController 构造函数，用于创建 CommentController 实例
func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// AddComment 处理发表评论的 HTTP 请求
// @Summary      发表评论
// @Description  在指定帖子下发表评论。评论写入与帖子评论计数更新在同一事务内完成；目标帖子不存在时评论仍会保留。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommentRequest true "评论数据"
// @Success      200 {object} vo.CommentResponseWrapper "评论发表成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      500 {object} vo.BaseResponseWrapper "发表评论时发生内部服务器错误"
// @Router       /api/v1/community/comments [post]
func (ctrl *CommentController) AddComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	commentVO, serviceErr := ctrl.commentService.AddComment(c.Request.Context(), &req)
	if serviceErr != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "发表评论失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess(c, commentVO, "评论发表成功")
}

// ListCommentsForPost 处理获取帖子评论列表的 HTTP 请求
// @Summary      获取帖子的评论列表
// @Description  返回指定帖子下的全部评论，按创建时间倒序。存储故障时降级为空列表而不是报错。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        post_id path string true "帖子 ID (UUID)" format(uuid)
// @Success      200 {object} vo.ListCommentsResponseWrapper "成功响应，包含评论列表"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID 格式"
// @Router       /api/v1/community/comments/by-post/{post_id} [get]
func (ctrl *CommentController) ListCommentsForPost(c *gin.Context) {
	postID := c.Param("post_id")
	if _, err := uuid.Parse(postID); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID 格式: "+postID)
		return
	}

	comments := ctrl.commentService.ListCommentsForPost(c.Request.Context(), postID)
	response.RespondSuccess(c, &vo.ListCommentsResponse{Comments: comments, Total: len(comments)}, "评论列表获取成功")
}

// RegisterRoutes 注册 CommentController 的路由
func (ctrl *CommentController) RegisterRoutes(group *gin.RouterGroup) {
	comments := group.Group("/comments")
	{
		comments.POST("", ctrl.AddComment)                         // POST /api/v1/community/comments
		comments.GET("/by-post/:post_id", ctrl.ListCommentsForPost) // GET  /api/v1/community/comments/by-post/:post_id
	}
}
