package dao

import (
	"Tube/models"
	"Tube/pkg/snowflake"
	"context"
	"time"

	"gorm.io/gorm"
)

type VideoLikeDAO struct {
	Repo[models.VideoLike]
}

func NewVideoLikeDAO(db *gorm.DB) *VideoLikeDAO {
	return &VideoLikeDAO{Repo: NewRepo[models.VideoLike](db)}
}

// Toggle 点赞/取消点赞，与订阅 toggle 同一套事务写法
func (d *VideoLikeDAO) Toggle(ctx context.Context, userID, videoID uint64) (liked bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.VideoLike
		err := tx.Where("user_id = ? AND video_id = ?", userID, videoID).
			Limit(1).Find(&item).Error
		if err != nil {
			return err
		}
		if item.ID != 0 {
			liked = false
			return tx.Delete(&models.VideoLike{}, item.ID).Error
		}
		liked = true
		item = models.VideoLike{
			ID:        uint64(snowflake.GenID()),
			UserID:    userID,
			VideoID:   videoID,
			CreatedAt: time.Now(),
		}
		return tx.Create(&item).Error
	})
	return liked, err
}

// FindByUserID 用户点赞记录，按点赞时间倒序
func (d *VideoLikeDAO) FindByUserID(ctx context.Context, userID uint64) ([]*models.VideoLike, error) {
	var likes []*models.VideoLike
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&likes).Error
	return likes, err
}
