package service

import (
	"Tube/models"
	"Tube/types"
	"context"

	"golang.org/x/sync/errgroup"
)

// decorateConcurrency 批量装饰时的并发上限，别把存储打挂
const decorateConcurrency = 8

var _ IEngagementService = (*EngagementService)(nil)

// IEngagementService 用户卡片装饰的唯一出口
// 个人页、搜索、推荐、嵌套频道列表四处都走这里，保证口径一致
type IEngagementService interface {
	Decorate(ctx context.Context, user *models.Users, viewerID uint64) (*types.UserCard, error)
	DecorateList(ctx context.Context, users []*models.Users, viewerID uint64) ([]*types.UserCard, error)
	DecorateChannels(ctx context.Context, users []*models.Users) ([]*types.ChannelCard, error)
}

type EngagementService struct {
	SubStore   SubscriptionStore
	VideoStore VideoStore
}

// Decorate 给单个用户挂上订阅数/视频数/is_me/is_subscribed
// 三个读互不依赖，并发取
func (s *EngagementService) Decorate(ctx context.Context, user *models.Users, viewerID uint64) (*types.UserCard, error) {
	card := types.NewUserCard(user)
	card.IsMe = viewerID != 0 && viewerID == user.ID

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.SubStore.CountSubscribers(gCtx, user.ID)
		if err != nil {
			return err
		}
		card.SubscribersCount = count
		return nil
	})

	g.Go(func() error {
		count, err := s.VideoStore.CountByUserID(gCtx, user.ID)
		if err != nil {
			return err
		}
		card.VideosCount = count
		return nil
	})

	if viewerID != 0 {
		g.Go(func() error {
			subscribed, err := s.SubStore.IsSubscribed(gCtx, viewerID, user.ID)
			if err != nil {
				return err
			}
			card.IsSubscribed = subscribed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return card, nil
}

// DecorateList 批量装饰，候选用户之间互不依赖，限并发 fan-out
func (s *EngagementService) DecorateList(ctx context.Context, users []*models.Users, viewerID uint64) ([]*types.UserCard, error) {
	cards := make([]*types.UserCard, len(users))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(decorateConcurrency)

	for i, u := range users {
		g.Go(func() error {
			card, err := s.Decorate(gCtx, u, viewerID)
			if err != nil {
				return err
			}
			cards[i] = card
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}

// DecorateChannels 个人页嵌套频道的轻量装饰，只算订阅数
func (s *EngagementService) DecorateChannels(ctx context.Context, users []*models.Users) ([]*types.ChannelCard, error) {
	channels := make([]*types.ChannelCard, len(users))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(decorateConcurrency)

	for i, u := range users {
		g.Go(func() error {
			count, err := s.SubStore.CountSubscribers(gCtx, u.ID)
			if err != nil {
				return err
			}
			channels[i] = &types.ChannelCard{
				ID:               u.ID,
				Username:         u.Username,
				Avatar:           u.Avatar,
				SubscribersCount: count,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return channels, nil
}
