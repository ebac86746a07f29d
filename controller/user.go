package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/service"
)

// UserController 定义用户档案控制器的结构体
type UserController struct {
	userService service.UserService
}

// NewUserController 构造函数，用于创建 UserController 实例
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetUser 处理按显示名查询用户档案的 HTTP 请求
// @Summary      获取用户档案
// @Description  按显示名查询用户档案。档案在用户首次发帖时隐式创建。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        name path string true "用户显示名" maxLength(50)
// @Success      200 {object} vo.UserResponseWrapper "成功响应，包含用户档案"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Router       /api/v1/community/users/{name} [get]
func (ctrl *UserController) GetUser(c *gin.Context) {
	name := c.Param("name")

	userVO := ctrl.userService.GetUser(c.Request.Context(), name)
	if userVO == nil {
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "用户不存在: "+name)
		return
	}

	response.RespondSuccess(c, userVO, "用户档案获取成功")
}

// ListUsers 处理获取用户列表的 HTTP 请求
// @Summary      获取用户列表
// @Description  返回全部用户，按经验帖数量倒序。存储故障时降级为空列表而不是报错。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.ListUsersResponseWrapper "成功响应，包含用户列表"
// @Router       /api/v1/community/users [get]
func (ctrl *UserController) ListUsers(c *gin.Context) {
	users := ctrl.userService.ListUsers(c.Request.Context())
	response.RespondSuccess(c, &vo.ListUsersResponse{Users: users, Total: len(users)}, "用户列表获取成功")
}

// RegisterRoutes 注册 UserController 的路由
func (ctrl *UserController) RegisterRoutes(group *gin.RouterGroup) {
	users := group.Group("/users")
	{
		users.GET("", ctrl.ListUsers)     // GET /api/v1/community/users
		users.GET("/:name", ctrl.GetUser) // GET /api/v1/community/users/:name
	}
}
