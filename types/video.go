package types

import "Tube/models"

type FeedResponse struct {
	Feed []*models.Video `json:"feed"`
}

type VideosResponse struct {
	Videos []*models.Video `json:"videos"`
}

type SearchUsersResponse struct {
	Users []*UserCard `json:"users"`
}

type RecommendedChannelsResponse struct {
	Channels []*UserCard `json:"channels"`
}
