package service

import (
	"Tube/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type savedFixture struct {
	svc    *SavedService
	likes  *fakeLikeStore
	views  *fakeViewStore
	enrich *fakeEnricher
}

func newSavedFixture(videos ...*models.Video) *savedFixture {
	likes := &fakeLikeStore{}
	views := &fakeViewStore{}
	enrich := &fakeEnricher{views: map[uint64]int64{}}
	return &savedFixture{
		svc: &SavedService{
			LikeStore:  likes,
			ViewStore:  views,
			VideoStore: &fakeVideoStore{videos: videos},
			Enricher:   enrich,
		},
		likes:  likes,
		views:  views,
		enrich: enrich,
	}
}

func TestGetLikedVideos(t *testing.T) {
	ctx := context.Background()
	f := newSavedFixture(
		&models.Video{ID: 10, UserID: 2},
		&models.Video{ID: 11, UserID: 3},
	)
	f.likes.likes = []*models.VideoLike{
		{UserID: 1, VideoID: 10, CreatedAt: time.Now()},
		{UserID: 1, VideoID: 11, CreatedAt: time.Now()},
		{UserID: 9, VideoID: 10, CreatedAt: time.Now()},
	}
	f.enrich.views = map[uint64]int64{10: 5}

	videos, err := f.svc.GetLikedVideos(ctx, 1)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, 1, f.enrich.calls)

	ids := []uint64{videos[0].ID, videos[1].ID}
	assert.ElementsMatch(t, []uint64{10, 11}, ids)
}

func TestGetHistory_Dedup(t *testing.T) {
	ctx := context.Background()
	f := newSavedFixture(&models.Video{ID: 10, UserID: 2})

	// 同一条视频看三次只出一次
	require.NoError(t, f.views.Add(ctx, 1, 10))
	require.NoError(t, f.views.Add(ctx, 1, 10))
	require.NoError(t, f.views.Add(ctx, 1, 10))

	videos, err := f.svc.GetHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, uint64(10), videos[0].ID)
}

func TestGetHistory_EmptySkipsEnrichment(t *testing.T) {
	ctx := context.Background()
	f := newSavedFixture()

	videos, err := f.svc.GetHistory(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
	assert.Equal(t, 0, f.enrich.calls)
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()
	videoStore := &fakeVideoStore{videos: []*models.Video{{ID: 10, UserID: 2}}}
	likes := &fakeLikeStore{}
	svc := &LikeService{LikeStore: likes, VideoStore: videoStore}

	liked, err := svc.ToggleLike(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.ToggleLike(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Empty(t, likes.likes)
}

func TestToggleLike_VideoNotFound(t *testing.T) {
	ctx := context.Background()
	svc := &LikeService{LikeStore: &fakeLikeStore{}, VideoStore: &fakeVideoStore{}}

	_, err := svc.ToggleLike(ctx, 1, 404)
	require.Error(t, err)
}
