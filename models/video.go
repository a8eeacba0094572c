package models

import (
	"time"
)

type Video struct {
	ID          uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID      uint64    `gorm:"column:user_id;not null;index:idx_userid" json:"user_id"`
	Title       string    `gorm:"column:title;type:varchar(100);not null;default:''" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Url         string    `gorm:"column:url;type:varchar(255);not null;default:''" json:"url"`
	Thumbnail   string    `gorm:"column:thumbnail;type:varchar(255);not null;default:''" json:"thumbnail"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	// Views 由外部计数服务在返回前填充，不落库
	Views int64 `gorm:"-" json:"views"`
	// User 视频作者，部分查询联表带出
	User *Users `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (v Video) TableName() string {
	return "videos"
}
