package service

import (
	"Tube/pkg/response"
	"context"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	ToggleLike(ctx context.Context, viewerID, videoID uint64) (bool, error)
}

type LikeService struct {
	LikeStore  LikeStore
	VideoStore VideoStore
}

// ToggleLike 点赞/取消点赞
func (s *LikeService) ToggleLike(ctx context.Context, viewerID, videoID uint64) (bool, error) {
	exist, err := s.VideoStore.IsExist(ctx, "id = ?", videoID)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, response.NotFound("视频不存在")
	}
	return s.LikeStore.Toggle(ctx, viewerID, videoID)
}
