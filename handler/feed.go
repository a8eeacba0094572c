package handler

import (
	"Tube/config"
	"Tube/middleware"
	"Tube/pkg/context"
	"Tube/pkg/response"
	"Tube/service"
	"Tube/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Feed struct {
	Config      *config.Config
	FeedService service.IFeedService
}

func (f *Feed) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	viewer := middleware.OptionalAuth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1")
	g.GET("/feed", authorize, context.Wrap(f.GetFeed))
	g.GET("/channels/recommended", viewer, context.Wrap(f.GetRecommendedChannels))
}

// GetFeed 订阅 feed
func (f *Feed) GetFeed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	feed, err := f.FeedService.GetFeed(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, types.FeedResponse{Feed: feed})
	return nil
}

// GetRecommendedChannels 推荐频道，匿名可看
func (f *Feed) GetRecommendedChannels(c *gin.Context) error {
	channels, err := f.FeedService.GetRecommendedChannels(c.Request.Context(), context.GetViewerID(c))
	if err != nil {
		return err
	}

	response.Success(c, types.RecommendedChannelsResponse{Channels: channels})
	return nil
}
