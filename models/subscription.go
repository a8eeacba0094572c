package models

import (
	"time"
)

// Subscription 订阅关系
// 对应表 subscriptions
// 唯一键: subscriber_id + subscribed_to_id，配合事务关闭并发 toggle 的竞态
type Subscription struct {
	ID             uint64    `gorm:"column:id;primary_key" json:"id"`
	SubscriberID   uint64    `gorm:"column:subscriber_id;not null;uniqueIndex:uk_subscriber_target,priority:1" json:"subscriber_id"`     // 订阅人
	SubscribedToID uint64    `gorm:"column:subscribed_to_id;not null;uniqueIndex:uk_subscriber_target,priority:2" json:"subscribed_to_id"` // 被订阅的频道
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
