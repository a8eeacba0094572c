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

type User struct {
	Config         *config.Config
	ProfileService service.IProfileService
	FeedService    service.IFeedService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	viewer := middleware.OptionalAuth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.GET("/me", authorize, context.Wrap(u.GetMe))
	g.PUT("/me", authorize, context.Wrap(u.EditUser))
	g.GET("/search", viewer, context.Wrap(u.SearchUsers))
	g.GET("/:user_id/profile", viewer, context.Wrap(u.GetProfile))
}

// GetProfile 个人页，匿名可看
func (u *User) GetProfile(c *gin.Context) error {
	targetUserIDParam := c.Param("user_id")
	if targetUserIDParam == "" {
		return response.NewError(http.StatusBadRequest, "缺少 user_id")
	}
	var targetUserID uint64
	_, err := fmt.Sscanf(targetUserIDParam, "%d", &targetUserID)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}

	profile, err := u.ProfileService.GetProfile(c.Request.Context(), targetUserID, context.GetViewerID(c))
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"user": profile})
	return nil
}

// GetMe 当前登录用户
func (u *User) GetMe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	card, err := u.ProfileService.GetMe(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"user": card})
	return nil
}

// EditUser 修改自己的资料
func (u *User) EditUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.EditUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	user, err := u.ProfileService.EditUser(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"user": user})
	return nil
}

// SearchUsers 用户名搜索
func (u *User) SearchUsers(c *gin.Context) error {
	var req types.SearchUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	users, err := u.FeedService.SearchUsers(c.Request.Context(), req.Query, context.GetViewerID(c))
	if err != nil {
		return err
	}

	response.Success(c, types.SearchUsersResponse{Users: users})
	return nil
}
