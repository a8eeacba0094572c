package service

import (
	"Tube/models"
	"Tube/pkg/response"
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// viewCountKey 播放量计数 hash，field 是视频 ID
const viewCountKey = "video:views"

var _ IViewService = (*ViewCountService)(nil)
var _ Enricher = (*ViewCountService)(nil)

type IViewService interface {
	RecordView(ctx context.Context, viewerID, videoID uint64) error
}

// ViewCountService 播放量计数，redis 承接热点读写
// 同时实现 Enricher，给出参视频列表补 views 字段
type ViewCountService struct {
	Redis      *redis.Client
	ViewStore  ViewStore
	VideoStore VideoStore
}

// RecordView 落一条观看记录并把计数 +1
func (s *ViewCountService) RecordView(ctx context.Context, viewerID, videoID uint64) error {
	exist, err := s.VideoStore.IsExist(ctx, "id = ?", videoID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("视频不存在")
	}

	if err := s.ViewStore.Add(ctx, viewerID, videoID); err != nil {
		return err
	}
	return s.Redis.HIncrBy(ctx, viewCountKey, strconv.FormatUint(videoID, 10), 1).Err()
}

// Enrich 批量取播放量写回 Views，没计数的算 0
func (s *ViewCountService) Enrich(ctx context.Context, videos []*models.Video) error {
	if len(videos) == 0 {
		return nil
	}

	fields := make([]string, len(videos))
	for i, v := range videos {
		fields[i] = strconv.FormatUint(v.ID, 10)
	}

	values, err := s.Redis.HMGet(ctx, viewCountKey, fields...).Result()
	if err != nil {
		return err
	}

	for i, v := range values {
		if v == nil {
			continue
		}
		str, ok := v.(string)
		if !ok {
			continue
		}
		count, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			continue
		}
		videos[i].Views = count
	}
	return nil
}
