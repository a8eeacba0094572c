package handler

import (
	"Tube/config"
	"Tube/middleware"
	"Tube/pkg/context"
	"Tube/pkg/response"
	"Tube/service"
	"Tube/types"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Video struct {
	Config       *config.Config
	SavedService service.ISavedService
	LikeService  service.ILikeService
	ViewService  service.IViewService
}

func (v *Video) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(v.Config.Jwt.Secret))
	g := r.Group("/v1/videos")
	g.Use(authorize)
	g.GET("/liked", context.Wrap(v.GetLikedVideos))
	g.GET("/history", context.Wrap(v.GetHistory))
	g.POST("/:video_id/toggle-like", context.Wrap(v.ToggleLike))
	g.POST("/:video_id/view", context.Wrap(v.RecordView))
}

// GetLikedVideos 点赞过的视频
func (v *Video) GetLikedVideos(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	videos, err := v.SavedService.GetLikedVideos(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, types.VideosResponse{Videos: videos})
	return nil
}

// GetHistory 观看历史
func (v *Video) GetHistory(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	videos, err := v.SavedService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, types.VideosResponse{Videos: videos})
	return nil
}

// ToggleLike 点赞/取消点赞
func (v *Video) ToggleLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	videoID, err := v.videoIDParam(c)
	if err != nil {
		return err
	}

	liked, err := v.LikeService.ToggleLike(c.Request.Context(), userID, videoID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"liked": liked})
	return nil
}

// RecordView 上报一次观看
func (v *Video) RecordView(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	videoID, err := v.videoIDParam(c)
	if err != nil {
		return err
	}

	if err := v.ViewService.RecordView(c.Request.Context(), userID, videoID); err != nil {
		return err
	}

	response.Success(c, gin.H{})
	return nil
}

func (v *Video) videoIDParam(c *gin.Context) (uint64, error) {
	param := c.Param("video_id")
	if param == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 video_id")
	}
	var videoID uint64
	if _, err := fmt.Sscanf(param, "%d", &videoID); err != nil {
		return 0, response.NewError(http.StatusBadRequest, "video_id 格式错误")
	}
	return videoID, nil
}
