package dao

import (
	"Tube/models"
	"Tube/pkg/snowflake"
	"context"
	"time"

	"gorm.io/gorm"
)

type VideoViewDAO struct {
	Repo[models.VideoView]
}

func NewVideoViewDAO(db *gorm.DB) *VideoViewDAO {
	return &VideoViewDAO{Repo: NewRepo[models.VideoView](db)}
}

// Add 追加一条观看记录
func (d *VideoViewDAO) Add(ctx context.Context, userID, videoID uint64) error {
	view := models.VideoView{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: time.Now(),
	}
	return d.Db.WithContext(ctx).Create(&view).Error
}

// FindByUserID 用户观看记录，按观看时间倒序
func (d *VideoViewDAO) FindByUserID(ctx context.Context, userID uint64) ([]*models.VideoView, error) {
	var views []*models.VideoView
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&views).Error
	return views, err
}
