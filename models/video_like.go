package models

import "time"

// VideoLike 点赞记录
// 对应表 video_likes
// 唯一键: user_id + video_id
type VideoLike struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_video,priority:1" json:"user_id"`
	VideoID   uint64    `gorm:"column:video_id;not null;uniqueIndex:uk_user_video,priority:2" json:"video_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (v VideoLike) TableName() string { return "video_likes" }
