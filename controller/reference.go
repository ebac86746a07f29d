package controller

import (
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/reference"
)

// ReferenceController 提供内置静态参考资料（病害库、农药目录、学习资源）的只读接口。
// 数据随服务编译打包，不经过存储层。
type ReferenceController struct{}

// NewReferenceController 构造函数，用于创建 ReferenceController 实例
func NewReferenceController() *ReferenceController {
	return &ReferenceController{}
}

// ListDiseases 处理获取病害库的 HTTP 请求
// @Summary      获取常见病害库
// @Description  返回内置的常见作物病害资料，支持按名称或简介关键词过滤。
// @Tags         reference (参考资料)
// @Accept       json
// @Produce      json
// @Param        keyword query string false "搜索关键词 (匹配名称或简介)"
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含病害列表"
// @Router       /api/v1/community/reference/diseases [get]
func (ctrl *ReferenceController) ListDiseases(c *gin.Context) {
	diseases := reference.ListDiseases(c.Query("keyword"))
	response.RespondSuccess(c, diseases, "病害库获取成功")
}

// ListPesticides 处理获取农药目录的 HTTP 请求
// @Summary      获取农药目录
// @Description  返回内置的农药商品目录，支持按类别与关键词过滤。
// @Tags         reference (参考资料)
// @Accept       json
// @Produce      json
// @Param        category query string false "类别" Enums(all,Insecticide,Fungicide,Herbicide)
// @Param        keyword query string false "搜索关键词 (匹配名称或简介)"
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含农药列表"
// @Router       /api/v1/community/reference/pesticides [get]
func (ctrl *ReferenceController) ListPesticides(c *gin.Context) {
	pesticides := reference.ListPesticides(c.Query("category"), c.Query("keyword"))
	response.RespondSuccess(c, pesticides, "农药目录获取成功")
}

// ListArticles 处理获取学习资源的 HTTP 请求
// @Summary      获取学习资源列表
// @Description  返回内置的学习资源（新闻、指南、视频），支持按类别过滤。
// @Tags         reference (参考资料)
// @Accept       json
// @Produce      json
// @Param        category query string false "类别" Enums(all,news,guide,video,blog)
// @Success      200 {object} vo.BaseResponseWrapper "成功响应，包含资源列表"
// @Router       /api/v1/community/reference/articles [get]
func (ctrl *ReferenceController) ListArticles(c *gin.Context) {
	articles := reference.ListArticles(c.Query("category"))
	response.RespondSuccess(c, articles, "学习资源获取成功")
}

// RegisterRoutes 注册 ReferenceController 的路由
func (ctrl *ReferenceController) RegisterRoutes(group *gin.RouterGroup) {
	ref := group.Group("/reference")
	{
		ref.GET("/diseases", ctrl.ListDiseases)     // GET /api/v1/community/reference/diseases
		ref.GET("/pesticides", ctrl.ListPesticides) // GET /api/v1/community/reference/pesticides
		ref.GET("/articles", ctrl.ListArticles)     // GET /api/v1/community/reference/articles
	}
}
