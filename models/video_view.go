package models

import "time"

// VideoView 观看记录，一次观看一行
// 对应表 video_views
type VideoView struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_created" json:"user_id"`
	VideoID   uint64    `gorm:"column:video_id;not null" json:"video_id"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_user_created" json:"created_at"`
}

func (v VideoView) TableName() string { return "video_views" }
