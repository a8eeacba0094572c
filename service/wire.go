package service

import (
	"Tube/dao"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(SubscriptionService), "*"),
	wire.Bind(new(ISubscriptionService), new(*SubscriptionService)),

	wire.Struct(new(EngagementService), "*"),
	wire.Bind(new(IEngagementService), new(*EngagementService)),

	wire.Struct(new(ProfileService), "*"),
	wire.Bind(new(IProfileService), new(*ProfileService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(SavedService), "*"),
	wire.Bind(new(ISavedService), new(*SavedService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(ViewCountService), "*"),
	wire.Bind(new(IViewService), new(*ViewCountService)),
	wire.Bind(new(Enricher), new(*ViewCountService)),

	// 存储接口直接落到 dao 的具体实现
	wire.Bind(new(UserStore), new(*dao.Users)),
	wire.Bind(new(SubscriptionStore), new(*dao.SubscriptionDAO)),
	wire.Bind(new(VideoStore), new(*dao.VideoDAO)),
	wire.Bind(new(LikeStore), new(*dao.VideoLikeDAO)),
	wire.Bind(new(ViewStore), new(*dao.VideoViewDAO)),
)
