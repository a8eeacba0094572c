package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewSubscriptionDAO,
	NewVideoDAO,
	NewVideoLikeDAO,
	NewVideoViewDAO,
)
