package service

import (
	"Tube/models"
	"context"
)

// 存储侧的窄接口，dao 里的具体类型直接满足
// service 只依赖接口，测试用内存假实现替换

type UserStore interface {
	FindById(ctx context.Context, id any) (*models.Users, error)
	IsExist(ctx context.Context, where string, args ...any) (bool, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]*models.Users, error)
	SearchByUsername(ctx context.Context, keyword string) ([]*models.Users, error)
	FindRecommended(ctx context.Context, excludeID uint64, limit int) ([]*models.Users, error)
	Update(ctx context.Context, userID uint64, updates map[string]any) error
}

type SubscriptionStore interface {
	IsSubscribed(ctx context.Context, subscriberID, targetID uint64) (bool, error)
	Toggle(ctx context.Context, subscriberID, targetID uint64) (bool, error)
	CountSubscribers(ctx context.Context, userID uint64) (int64, error)
	SubscribedToIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type VideoStore interface {
	IsExist(ctx context.Context, where string, args ...any) (bool, error)
	FindByUserID(ctx context.Context, userID uint64) ([]*models.Video, error)
	FindByUserIDs(ctx context.Context, userIDs []uint64) ([]*models.Video, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]*models.Video, error)
	CountByUserID(ctx context.Context, userID uint64) (int64, error)
}

type LikeStore interface {
	Toggle(ctx context.Context, userID, videoID uint64) (bool, error)
	FindByUserID(ctx context.Context, userID uint64) ([]*models.VideoLike, error)
}

type ViewStore interface {
	Add(ctx context.Context, userID, videoID uint64) error
	FindByUserID(ctx context.Context, userID uint64) ([]*models.VideoView, error)
}

// Enricher 外部播放量服务，给视频列表补上 views
// 约定：空列表不调用
type Enricher interface {
	Enrich(ctx context.Context, videos []*models.Video) error
}
