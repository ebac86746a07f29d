package vo

import (
	"time"

	"github.com/Xushengqwer/community_service/models/entities"
)

// UserVO 定义了用户档案的响应数据结构
type UserVO struct {
	Name            string    `json:"name"`                  // 显示名（主键）
	Avatar          string    `json:"avatar"`                // 头像URL
	Bio             string    `json:"bio,omitempty"`         // 个人简介
	Location        string    `json:"location,omitempty"`    // 所在地
	Email           string    `json:"email,omitempty"`       // 邮箱
	Phone           string    `json:"phone,omitempty"`       // 电话
	Specialties     []string  `json:"specialties"`           // 擅长领域
	ExperienceCount int64     `json:"experience_count"`      // 经验计数（发帖数）
	JoinedAt        time.Time `json:"joined_at"`             // 加入时间
}

// ListUsersResponse 定义用户列表（贡献排行榜）的响应结构
type ListUsersResponse struct {
	Users []*UserVO `json:"users"` // 用户列表，按经验计数倒序
	Total int       `json:"total"` // 本次返回的用户数量
}

// NewUserVOFromEntity 将用户实体转换为响应 VO
func NewUserVOFromEntity(user *entities.User) *UserVO {
	if user == nil {
		return nil
	}
	specialties := user.Specialties
	if specialties == nil {
		specialties = []string{} // 空列表而非 null
	}
	return &UserVO{
		Name:            user.Name,
		Avatar:          user.Avatar,
		Bio:             user.Bio,
		Location:        user.Location,
		Email:           user.Email,
		Phone:           user.Phone,
		Specialties:     specialties,
		ExperienceCount: user.ExperienceCount,
		JoinedAt:        user.JoinedAt,
	}
}

// MapUsersToUserVOs 将用户实体列表转换为响应VO列表。
func MapUsersToUserVOs(users []*entities.User) []*UserVO {
	if len(users) == 0 {
		return []*UserVO{}
	}
	vos := make([]*UserVO, 0, len(users))
	for _, user := range users {
		if user == nil {
			continue
		}
		vos = append(vos, NewUserVOFromEntity(user))
	}
	return vos
}
