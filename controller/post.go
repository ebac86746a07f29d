package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/service"
)

// PostController 定义帖子控制器的结构体
type PostController struct {
	postService service.PostService // 服务层接口，通过依赖注入传入
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// CreatePost 处理发布经验帖的 HTTP 请求
// @Summary      发布经验帖
// @Description  以 multipart/form-data 发布一篇病害或农药使用经验帖。配图可以作为文件字段 image_file 上传（服务端转存对象存储），也可以通过 image 字段直接给出已托管的 URL；两者都缺省则帖子无配图。
// @Tags         posts (帖子)
// @Accept       multipart/form-data
// @Produce      json
// @Param        author formData string true "作者显示名" maxLength(50)
// @Param        author_avatar formData string false "作者头像 URL (可选)" format(url)
// @Param        title formData string true "标题" maxLength(255)
// @Param        content formData string true "正文" maxLength(2000)
// @Param        image formData string false "已托管的配图 URL (可选)" format(url)
// @Param        type formData string true "帖子类型" Enums(disease,pesticide)
// @Param        crop_type formData string false "作物种类 (可选)"
// @Param        treatment formData string false "处理方法 (可选)"
// @Param        effectiveness formData string false "效果评价 (可选)" Enums(high,medium,low)
// @Param        image_file formData file false "配图文件 (可选, 最大 5MB)"
// @Success      200 {object} vo.PostResponseWrapper "帖子发布成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或文件处理错误"
// @Failure      500 {object} vo.BaseResponseWrapper "发布帖子时发生内部服务器错误"
// @Router       /api/v1/community/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	// 1. 绑定 DTO 数据（multipart 表单字段或 JSON 负载均可）
	var req dto.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	// 2. 获取可选的配图文件。字段缺省不是错误（纯文字帖或使用 image URL）。
	imageFile, err := c.FormFile("image_file")
	if err != nil && err != http.ErrMissingFile {
		imageFile = nil
	}

	// 3. 调用服务层处理
	postVO, serviceErr := ctrl.postService.CreatePost(c.Request.Context(), &req, imageFile)
	if serviceErr != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "发布帖子失败: "+serviceErr.Error())
		return
	}

	response.RespondSuccess(c, postVO, "帖子发布成功")
}

// ListFeed 处理获取信息流的 HTTP 请求
// @Summary      获取信息流
// @Description  返回全部帖子，按创建时间倒序。存储故障时降级为空列表而不是报错。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.ListPostsResponseWrapper "成功响应，包含帖子列表"
// @Router       /api/v1/community/posts [get]
func (ctrl *PostController) ListFeed(c *gin.Context) {
	posts := ctrl.postService.ListFeed(c.Request.Context())
	response.RespondSuccess(c, &vo.ListPostsResponse{Posts: posts, Total: len(posts)}, "信息流获取成功")
}

// ListPostsByAuthor 处理按作者查询帖子的 HTTP 请求
// @Summary      获取指定作者的帖子列表
// @Description  按作者显示名返回其全部帖子。存储故障时降级为空列表而不是报错。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        author query string true "作者显示名" maxLength(50)
// @Success      200 {object} vo.ListPostsResponseWrapper "成功响应，包含该作者的帖子列表"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Router       /api/v1/community/posts/by-author [get]
func (ctrl *PostController) ListPostsByAuthor(c *gin.Context) {
	var req dto.ListPostsByAuthorRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	posts := ctrl.postService.ListPostsByAuthor(c.Request.Context(), req.Author)
	response.RespondSuccess(c, &vo.ListPostsResponse{Posts: posts, Total: len(posts)}, "作者帖子列表获取成功")
}

// RegisterRoutes 注册 PostController 的路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.POST("", ctrl.CreatePost)                 // POST /api/v1/community/posts
		posts.GET("", ctrl.ListFeed)                    // GET  /api/v1/community/posts
		posts.GET("/by-author", ctrl.ListPostsByAuthor) // GET  /api/v1/community/posts/by-author
	}
}
