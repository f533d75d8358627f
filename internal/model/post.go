package model

import (
	"time"
)

type Post struct {
	ID       string `gorm:"type:char(36);primaryKey" json:"id"`
	UserID   string `gorm:"type:char(36);not null;index:idx_user_id" json:"user_id"`
	Caption  string `gorm:"type:text" json:"caption"`
	URL      string `gorm:"type:varchar(512);not null" json:"url"`
	FileType string `gorm:"type:varchar(16);not null" json:"file_type"` // image | video
	FileName string `gorm:"type:varchar(255);not null" json:"file_name"`
	Width    int    `gorm:"not null;default:0" json:"width"`
	Height   int    `gorm:"not null;default:0" json:"height"`
	// CreatedAt 由提交时刻赋值，作为 Feed 排序键
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
