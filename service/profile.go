package service

import (
	"Tube/models"
	"Tube/pkg/response"
	"Tube/types"
	"context"
)

var _ IProfileService = (*ProfileService)(nil)

type IProfileService interface {
	GetProfile(ctx context.Context, targetID, viewerID uint64) (*types.ProfileResponse, error)
	GetMe(ctx context.Context, viewerID uint64) (*types.UserCard, error)
	EditUser(ctx context.Context, viewerID uint64, req *types.EditUserReq) (*models.Users, error)
}

type ProfileService struct {
	UserStore  UserStore
	SubStore   SubscriptionStore
	VideoStore VideoStore
	Engagement IEngagementService
	Enricher   Enricher
}

// GetProfile 个人页聚合：用户卡片 + 订阅的频道 + 发布的视频
func (s *ProfileService) GetProfile(ctx context.Context, targetID, viewerID uint64) (*types.ProfileResponse, error) {
	user, err := s.UserStore.FindById(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NotFound("用户不存在")
	}

	card, err := s.Engagement.Decorate(ctx, user, viewerID)
	if err != nil {
		return nil, err
	}

	// 他订阅的频道，嵌套列表只做轻量装饰
	channelIDs, err := s.SubStore.SubscribedToIDs(ctx, targetID)
	if err != nil {
		return nil, err
	}
	channelUsers, err := s.UserStore.FindByIDs(ctx, channelIDs)
	if err != nil {
		return nil, err
	}
	channels, err := s.Engagement.DecorateChannels(ctx, channelUsers)
	if err != nil {
		return nil, err
	}

	videos, err := s.VideoStore.FindByUserID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	// 空列表不走播放量服务
	if len(videos) > 0 {
		if err := s.Enricher.Enrich(ctx, videos); err != nil {
			return nil, err
		}
	}

	return &types.ProfileResponse{
		UserCard: card,
		Channels: channels,
		Videos:   videos,
	}, nil
}

// GetMe 当前登录用户自己的卡片
func (s *ProfileService) GetMe(ctx context.Context, viewerID uint64) (*types.UserCard, error) {
	user, err := s.UserStore.FindById(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NotFound("用户不存在")
	}
	return s.Engagement.Decorate(ctx, user, viewerID)
}

// EditUser 只改自己，字段可选，没传的不动
func (s *ProfileService) EditUser(ctx context.Context, viewerID uint64, req *types.EditUserReq) (*models.Users, error) {
	updates := make(map[string]any)
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.About != nil {
		updates["about"] = *req.About
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Cover != nil {
		updates["cover"] = *req.Cover
	}

	if err := s.UserStore.Update(ctx, viewerID, updates); err != nil {
		return nil, err
	}

	user, err := s.UserStore.FindById(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NotFound("用户不存在")
	}
	return user, nil
}
