package service

import (
	"Tube/models"
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// 内存假实现，顶替 dao 里的真实存储

type fakeUserStore struct {
	users map[uint64]*models.Users
}

func newFakeUserStore(users ...*models.Users) *fakeUserStore {
	m := make(map[uint64]*models.Users, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserStore{users: m}
}

func (f *fakeUserStore) FindById(_ context.Context, id any) (*models.Users, error) {
	u, ok := f.users[id.(uint64)]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserStore) IsExist(_ context.Context, _ string, args ...any) (bool, error) {
	_, ok := f.users[args[0].(uint64)]
	return ok, nil
}

func (f *fakeUserStore) FindByIDs(_ context.Context, ids []uint64) ([]*models.Users, error) {
	out := make([]*models.Users, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) SearchByUsername(_ context.Context, keyword string) ([]*models.Users, error) {
	// 模拟 MySQL LIKE 的大小写不敏感
	kw := strings.ToLower(keyword)
	var out []*models.Users
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.Username), kw) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) FindRecommended(_ context.Context, excludeID uint64, limit int) ([]*models.Users, error) {
	var out []*models.Users
	for _, u := range f.users {
		if u.ID == excludeID {
			continue
		}
		out = append(out, u)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, userID uint64, updates map[string]any) error {
	u, ok := f.users[userID]
	if !ok {
		return nil
	}
	if v, ok := updates["username"]; ok {
		u.Username = v.(string)
	}
	if v, ok := updates["about"]; ok {
		u.About = v.(string)
	}
	if v, ok := updates["avatar"]; ok {
		u.Avatar = v.(string)
	}
	if v, ok := updates["cover"]; ok {
		u.Cover = v.(string)
	}
	return nil
}

type edge struct {
	subscriber uint64
	target     uint64
}

type fakeSubStore struct {
	mu    sync.Mutex
	edges map[edge]struct{}
}

func newFakeSubStore() *fakeSubStore {
	return &fakeSubStore{edges: make(map[edge]struct{})}
}

func (f *fakeSubStore) IsSubscribed(_ context.Context, subscriberID, targetID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.edges[edge{subscriberID, targetID}]
	return ok, nil
}

func (f *fakeSubStore) Toggle(_ context.Context, subscriberID, targetID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := edge{subscriberID, targetID}
	if _, ok := f.edges[e]; ok {
		delete(f.edges, e)
		return false, nil
	}
	f.edges[e] = struct{}{}
	return true, nil
}

func (f *fakeSubStore) CountSubscribers(_ context.Context, userID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for e := range f.edges {
		if e.target == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSubStore) SubscribedToIDs(_ context.Context, userID uint64) ([]uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []uint64
	for e := range f.edges {
		if e.subscriber == userID {
			ids = append(ids, e.target)
		}
	}
	return ids, nil
}

type fakeVideoStore struct {
	videos []*models.Video
}

func (f *fakeVideoStore) IsExist(_ context.Context, _ string, args ...any) (bool, error) {
	id := args[0].(uint64)
	for _, v := range f.videos {
		if v.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVideoStore) FindByUserID(_ context.Context, userID uint64) ([]*models.Video, error) {
	out := []*models.Video{}
	for _, v := range f.videos {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeVideoStore) FindByUserIDs(_ context.Context, userIDs []uint64) ([]*models.Video, error) {
	owners := make(map[uint64]struct{}, len(userIDs))
	for _, id := range userIDs {
		owners[id] = struct{}{}
	}
	out := []*models.Video{}
	for _, v := range f.videos {
		if _, ok := owners[v.UserID]; ok {
			out = append(out, v)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeVideoStore) FindByIDs(_ context.Context, ids []uint64) ([]*models.Video, error) {
	wanted := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := []*models.Video{}
	for _, v := range f.videos {
		if _, ok := wanted[v.ID]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVideoStore) CountByUserID(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, v := range f.videos {
		if v.UserID == userID {
			count++
		}
	}
	return count, nil
}

func sortNewestFirst(videos []*models.Video) {
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
}

type fakeLikeStore struct {
	likes []*models.VideoLike
}

func (f *fakeLikeStore) Toggle(_ context.Context, userID, videoID uint64) (bool, error) {
	for i, l := range f.likes {
		if l.UserID == userID && l.VideoID == videoID {
			f.likes = append(f.likes[:i], f.likes[i+1:]...)
			return false, nil
		}
	}
	f.likes = append(f.likes, &models.VideoLike{
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: time.Now(),
	})
	return true, nil
}

func (f *fakeLikeStore) FindByUserID(_ context.Context, userID uint64) ([]*models.VideoLike, error) {
	out := []*models.VideoLike{}
	for _, l := range f.likes {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type fakeViewStore struct {
	views []*models.VideoView
}

func (f *fakeViewStore) Add(_ context.Context, userID, videoID uint64) error {
	f.views = append(f.views, &models.VideoView{
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeViewStore) FindByUserID(_ context.Context, userID uint64) ([]*models.VideoView, error) {
	out := []*models.VideoView{}
	for _, v := range f.views {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// fakeEnricher 记录调用次数，验证空列表不触发外部服务
type fakeEnricher struct {
	calls int
	views map[uint64]int64
}

func (f *fakeEnricher) Enrich(_ context.Context, videos []*models.Video) error {
	f.calls++
	for _, v := range videos {
		v.Views = f.views[v.ID]
	}
	return nil
}
