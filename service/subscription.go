package service

import (
	"Tube/pkg/response"
	"context"
)

var _ ISubscriptionService = (*SubscriptionService)(nil)

type ISubscriptionService interface {
	ToggleSubscription(ctx context.Context, viewerID, targetID uint64) error
	IsSubscribed(ctx context.Context, viewerID, targetID uint64) (bool, error)
	SubscriberCount(ctx context.Context, userID uint64) (int64, error)
	SubscribedToIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type SubscriptionService struct {
	SubStore  SubscriptionStore
	UserStore UserStore
}

// ToggleSubscription 订阅/取消订阅，有边删边，无边建边
func (s *SubscriptionService) ToggleSubscription(ctx context.Context, viewerID, targetID uint64) error {
	// 不能订阅自己
	if viewerID == targetID {
		return response.InvalidOperation("不能订阅自己")
	}

	// 校验频道是否存在
	exist, err := s.UserStore.IsExist(ctx, "id = ?", targetID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("用户不存在")
	}

	_, err = s.SubStore.Toggle(ctx, viewerID, targetID)
	return err
}

// IsSubscribed 匿名访客一律 false
func (s *SubscriptionService) IsSubscribed(ctx context.Context, viewerID, targetID uint64) (bool, error) {
	if viewerID == 0 {
		return false, nil
	}
	return s.SubStore.IsSubscribed(ctx, viewerID, targetID)
}

func (s *SubscriptionService) SubscriberCount(ctx context.Context, userID uint64) (int64, error) {
	return s.SubStore.CountSubscribers(ctx, userID)
}

func (s *SubscriptionService) SubscribedToIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	return s.SubStore.SubscribedToIDs(ctx, userID)
}
