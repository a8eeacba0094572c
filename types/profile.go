package types

import "Tube/models"

// ChannelCard 个人页里嵌套的频道列表项，只带订阅数的轻量装饰
type ChannelCard struct {
	ID               uint64 `json:"id"`
	Username         string `json:"username"`
	Avatar           string `json:"avatar"`
	SubscribersCount int64  `json:"subscribers_count"`
}

type ProfileResponse struct {
	*UserCard
	Channels []*ChannelCard  `json:"channels"`
	Videos   []*models.Video `json:"videos"`
}
