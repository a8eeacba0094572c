package service

import (
	"Tube/models"
	"Tube/pkg/response"
	"Tube/types"
	"context"
)

// recommendLimit 推荐频道最多返回这么多个，存储顺序随机取样，不排序
const recommendLimit = 10

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	GetFeed(ctx context.Context, viewerID uint64) ([]*models.Video, error)
	GetRecommendedChannels(ctx context.Context, viewerID uint64) ([]*types.UserCard, error)
	SearchUsers(ctx context.Context, query string, viewerID uint64) ([]*types.UserCard, error)
}

type FeedService struct {
	UserStore  UserStore
	SubStore   SubscriptionStore
	VideoStore VideoStore
	Engagement IEngagementService
	Enricher   Enricher
}

// GetFeed 订阅 feed：所有已订阅频道的视频，按发布时间倒序
func (s *FeedService) GetFeed(ctx context.Context, viewerID uint64) ([]*models.Video, error) {
	channelIDs, err := s.SubStore.SubscribedToIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	videos, err := s.VideoStore.FindByUserIDs(ctx, channelIDs)
	if err != nil {
		return nil, err
	}
	// 空 feed 原样返回，不调播放量服务
	if len(videos) > 0 {
		if err := s.Enricher.Enrich(ctx, videos); err != nil {
			return nil, err
		}
	}
	return videos, nil
}

// GetRecommendedChannels 推荐频道，排除自己，最多 10 个
func (s *FeedService) GetRecommendedChannels(ctx context.Context, viewerID uint64) ([]*types.UserCard, error) {
	users, err := s.UserStore.FindRecommended(ctx, viewerID, recommendLimit)
	if err != nil {
		return nil, err
	}
	return s.Engagement.DecorateList(ctx, users, viewerID)
}

// SearchUsers 用户名子串搜索，不区分大小写
func (s *FeedService) SearchUsers(ctx context.Context, query string, viewerID uint64) ([]*types.UserCard, error) {
	if query == "" {
		return nil, response.InvalidOperation("搜索词不能为空")
	}

	users, err := s.UserStore.SearchByUsername(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.Engagement.DecorateList(ctx, users, viewerID)
}
