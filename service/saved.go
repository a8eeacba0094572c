package service

import (
	"Tube/models"
	"context"
)

var _ ISavedService = (*SavedService)(nil)

// ISavedService 点赞过 / 看过的视频
type ISavedService interface {
	GetLikedVideos(ctx context.Context, viewerID uint64) ([]*models.Video, error)
	GetHistory(ctx context.Context, viewerID uint64) ([]*models.Video, error)
}

type SavedService struct {
	LikeStore  LikeStore
	ViewStore  ViewStore
	VideoStore VideoStore
	Enricher   Enricher
}

// GetLikedVideos 点赞记录投影成去重的视频 ID 集合再回表
// 回表用 IN 查询，不保证保持点赞时间顺序
func (s *SavedService) GetLikedVideos(ctx context.Context, viewerID uint64) ([]*models.Video, error) {
	likes, err := s.LikeStore.FindByUserID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(likes))
	seen := make(map[uint64]struct{}, len(likes))
	for _, l := range likes {
		if _, ok := seen[l.VideoID]; ok {
			continue
		}
		seen[l.VideoID] = struct{}{}
		ids = append(ids, l.VideoID)
	}

	return s.fetchVideos(ctx, ids)
}

// GetHistory 观看记录，同一条视频看多次只出一次
func (s *SavedService) GetHistory(ctx context.Context, viewerID uint64) ([]*models.Video, error) {
	views, err := s.ViewStore.FindByUserID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(views))
	seen := make(map[uint64]struct{}, len(views))
	for _, v := range views {
		if _, ok := seen[v.VideoID]; ok {
			continue
		}
		seen[v.VideoID] = struct{}{}
		ids = append(ids, v.VideoID)
	}

	return s.fetchVideos(ctx, ids)
}

func (s *SavedService) fetchVideos(ctx context.Context, ids []uint64) ([]*models.Video, error) {
	videos, err := s.VideoStore.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(videos) > 0 {
		if err := s.Enricher.Enrich(ctx, videos); err != nil {
			return nil, err
		}
	}
	return videos, nil
}
