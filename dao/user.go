package dao

import (
	"Tube/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByIDs 根据 ID 列表查询用户
func (u *Users) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Users, error) {
	if len(ids) == 0 {
		return []*models.Users{}, nil
	}
	var users []*models.Users
	err := u.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	return users, err
}

// SearchByUsername 用户名模糊查询，LIKE 默认不区分大小写
func (u *Users) SearchByUsername(ctx context.Context, keyword string) ([]*models.Users, error) {
	var users []*models.Users
	err := u.Db.WithContext(ctx).
		Where("username LIKE ?", "%"+keyword+"%").
		Find(&users).Error
	return users, err
}

// FindRecommended 随便取 limit 个别人，不做排序
func (u *Users) FindRecommended(ctx context.Context, excludeID uint64, limit int) ([]*models.Users, error) {
	var users []*models.Users
	db := u.Db.WithContext(ctx)
	if excludeID > 0 {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Limit(limit).Find(&users).Error
	return users, err
}

func (u *Users) Update(ctx context.Context, userID uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	err := u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		Updates(updates).Error

	if err != nil {
		return fmt.Errorf("dao.Users.Update error: %w", err)
	}

	return nil
}
