package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// PostResponseWrapper 对应 response.APIResponse[vo.PostVO]
type PostResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    PostVO `json:"data"` // 使用具体的 vo.PostVO
}

// ListPostsResponseWrapper 对应 response.APIResponse[vo.ListPostsResponse]
type ListPostsResponseWrapper struct {
	Code    int               `json:"code" example:"0"`
	Message string            `json:"message,omitempty" example:"success"`
	Data    ListPostsResponse `json:"data"`
}

// CommentResponseWrapper 对应 response.APIResponse[vo.CommentVO]
type CommentResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    CommentVO `json:"data"`
}

// ListCommentsResponseWrapper 对应 response.APIResponse[vo.ListCommentsResponse]
type ListCommentsResponseWrapper struct {
	Code    int                  `json:"code" example:"0"`
	Message string               `json:"message,omitempty" example:"success"`
	Data    ListCommentsResponse `json:"data"`
}

// UserResponseWrapper 对应 response.APIResponse[vo.UserVO]
type UserResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    UserVO `json:"data"`
}

// ListUsersResponseWrapper 对应 response.APIResponse[vo.ListUsersResponse]
type ListUsersResponseWrapper struct {
	Code    int               `json:"code" example:"0"`
	Message string            `json:"message,omitempty" example:"success"`
	Data    ListUsersResponse `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
