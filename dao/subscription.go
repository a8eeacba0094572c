package dao

import (
	"Tube/models"
	"Tube/pkg/snowflake"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type SubscriptionDAO struct {
	Repo[models.Subscription]
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{
		Repo: NewRepo[models.Subscription](db),
	}
}

// IsSubscribed 检查是否已订阅
func (d *SubscriptionDAO) IsSubscribed(ctx context.Context, subscriberID, targetID uint64) (bool, error) {
	var sub models.Subscription
	err := d.Db.WithContext(ctx).
		Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberID, targetID).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Toggle 订阅/取消订阅，已有记录则删除，否则创建
// 整个查改放在事务里，配合唯一键避免并发双写
func (d *SubscriptionDAO) Toggle(ctx context.Context, subscriberID, targetID uint64) (subscribed bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub models.Subscription
		err := tx.Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberID, targetID).
			Limit(1).Find(&sub).Error
		if err != nil {
			return err
		}
		if sub.ID != 0 { // delete
			subscribed = false
			return tx.Delete(&models.Subscription{}, sub.ID).Error
		}
		// create
		subscribed = true
		sub = models.Subscription{
			ID:             uint64(snowflake.GenID()),
			SubscriberID:   subscriberID,
			SubscribedToID: targetID,
			CreatedAt:      time.Now(),
		}
		return tx.Create(&sub).Error
	})
	return subscribed, err
}

// CountSubscribers 获取频道订阅数
func (d *SubscriptionDAO) CountSubscribers(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscribed_to_id = ?", userID).
		Count(&count).Error
	return count, err
}

// SubscribedToIDs 获取用户订阅的全部频道 ID
func (d *SubscriptionDAO) SubscribedToIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriber_id = ?", userID).
		Pluck("subscribed_to_id", &ids).Error
	return ids, err
}
