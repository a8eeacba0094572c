package service

import (
	"Tube/models"
	"Tube/pkg/response"
	"Tube/types"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	svc    *ProfileService
	subs   *fakeSubStore
	videos *fakeVideoStore
	enrich *fakeEnricher
}

func newProfileFixture(users ...*models.Users) *profileFixture {
	userStore := newFakeUserStore(users...)
	subs := newFakeSubStore()
	videos := &fakeVideoStore{}
	enrich := &fakeEnricher{views: map[uint64]int64{}}
	return &profileFixture{
		svc: &ProfileService{
			UserStore:  userStore,
			SubStore:   subs,
			VideoStore: videos,
			Engagement: &EngagementService{SubStore: subs, VideoStore: videos},
			Enricher:   enrich,
		},
		subs:   subs,
		videos: videos,
		enrich: enrich,
	}
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(
		&models.Users{ID: 1, Username: "viewer"},
		&models.Users{ID: 2, Username: "creator", About: "hi"},
		&models.Users{ID: 3, Username: "channel"},
	)
	// creator 订阅了 channel，viewer 订阅了 creator
	f.subs.edges[edge{2, 3}] = struct{}{}
	f.subs.edges[edge{1, 2}] = struct{}{}

	now := time.Now()
	f.videos.videos = []*models.Video{
		{ID: 10, UserID: 2, CreatedAt: now.Add(-time.Hour)},
		{ID: 11, UserID: 2, CreatedAt: now},
	}
	f.enrich.views = map[uint64]int64{10: 3, 11: 9}

	profile, err := f.svc.GetProfile(ctx, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, "creator", profile.Username)
	assert.True(t, profile.IsSubscribed)
	assert.False(t, profile.IsMe)
	assert.Equal(t, int64(1), profile.SubscribersCount)
	assert.Equal(t, int64(2), profile.VideosCount)

	require.Len(t, profile.Channels, 1)
	assert.Equal(t, uint64(3), profile.Channels[0].ID)

	require.Len(t, profile.Videos, 2)
	assert.Equal(t, uint64(11), profile.Videos[0].ID)
	assert.Equal(t, int64(9), profile.Videos[0].Views)
	assert.Equal(t, 1, f.enrich.calls)
}

func TestGetProfile_Self(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(&models.Users{ID: 1, Username: "me"})

	profile, err := f.svc.GetProfile(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, profile.IsMe)
}

func TestGetProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture()

	_, err := f.svc.GetProfile(ctx, 404, 0)
	require.Error(t, err)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusNotFound, be.Code)
}

func TestGetProfile_NoVideosSkipsEnrichment(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(&models.Users{ID: 2, Username: "creator"})

	profile, err := f.svc.GetProfile(ctx, 2, 0)
	require.NoError(t, err)
	assert.NotNil(t, profile.Videos)
	assert.Empty(t, profile.Videos)
	assert.Equal(t, 0, f.enrich.calls)
}

func TestEditUser(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(&models.Users{ID: 1, Username: "old", About: "keep"})

	username := "new"
	avatar := "a.png"
	user, err := f.svc.EditUser(ctx, 1, &types.EditUserReq{
		Username: &username,
		Avatar:   &avatar,
	})
	require.NoError(t, err)

	assert.Equal(t, "new", user.Username)
	assert.Equal(t, "a.png", user.Avatar)
	// 没传的字段不动
	assert.Equal(t, "keep", user.About)
}
