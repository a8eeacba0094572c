package dao

import (
	"Tube/models"
	"context"

	"gorm.io/gorm"
)

type VideoDAO struct {
	Repo[models.Video]
}

func NewVideoDAO(db *gorm.DB) *VideoDAO {
	return &VideoDAO{Repo: NewRepo[models.Video](db)}
}

// FindByUserID 根据作者查询视频列表，按发布时间倒序
func (d *VideoDAO) FindByUserID(ctx context.Context, userID uint64) ([]*models.Video, error) {
	var videos []*models.Video
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

// FindByUserIDs 订阅 feed 用，按发布时间倒序并带出作者
func (d *VideoDAO) FindByUserIDs(ctx context.Context, userIDs []uint64) ([]*models.Video, error) {
	if len(userIDs) == 0 {
		return []*models.Video{}, nil
	}
	var videos []*models.Video
	err := d.Db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

// FindByIDs 根据 ID 列表查询视频，带出作者，不保证顺序
func (d *VideoDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Video, error) {
	if len(ids) == 0 {
		return []*models.Video{}, nil
	}
	var videos []*models.Video
	err := d.Db.WithContext(ctx).
		Preload("User").
		Where("id IN ?", ids).
		Find(&videos).Error
	return videos, err
}

// CountByUserID 作者视频数
func (d *VideoDAO) CountByUserID(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Video{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
