package types

import "Tube/models"

// UserCard 对外的用户卡片，聚合字段每次请求现算，不落库
type UserCard struct {
	ID               uint64 `json:"id"`
	Username         string `json:"username"`
	About            string `json:"about"`
	Avatar           string `json:"avatar"`
	Cover            string `json:"cover"`
	SubscribersCount int64  `json:"subscribers_count"`
	VideosCount      int64  `json:"videos_count"`
	IsMe             bool   `json:"is_me"`
	IsSubscribed     bool   `json:"is_subscribed"`
}

func NewUserCard(u *models.Users) *UserCard {
	return &UserCard{
		ID:       u.ID,
		Username: u.Username,
		About:    u.About,
		Avatar:   u.Avatar,
		Cover:    u.Cover,
	}
}

type EditUserReq struct {
	Username *string `json:"username"`
	About    *string `json:"about"`
	Avatar   *string `json:"avatar"`
	Cover    *string `json:"cover"`
}

type SearchUsersReq struct {
	Query string `form:"query"`
}
