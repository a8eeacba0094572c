package handler

import (
	"Tube/config"
	"Tube/middleware"
	"Tube/pkg/context"
	"Tube/pkg/response"
	"Tube/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Subscription struct {
	Config              *config.Config
	SubscriptionService service.ISubscriptionService
}

func (s *Subscription) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(s.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.POST("/:user_id/toggle-subscribe", authorize, context.Wrap(s.ToggleSubscribe))
}

// ToggleSubscribe 订阅/取消订阅频道
func (s *Subscription) ToggleSubscribe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetUserIDParam := c.Param("user_id")
	if targetUserIDParam == "" {
		return response.NewError(http.StatusBadRequest, "缺少 user_id")
	}
	var targetUserID uint64
	_, err = fmt.Sscanf(targetUserIDParam, "%d", &targetUserID)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}

	if err := s.SubscriptionService.ToggleSubscription(c.Request.Context(), userID, targetUserID); err != nil {
		return err
	}

	response.Success(c, gin.H{})
	return nil
}
