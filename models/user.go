package models

import (
	"time"
)

type Users struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`
	About     string    `gorm:"column:about;type:varchar(255);not null;default:''" json:"about"`
	Avatar    string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	Cover     string    `gorm:"column:cover;type:varchar(255);not null;default:''" json:"cover"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
