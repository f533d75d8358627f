package model

import (
	"time"
)

type User struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex:idx_email;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsActive     bool   `gorm:"type:tinyint(1);not null;default:1"`
	IsVerified   bool   `gorm:"type:tinyint(1);not null;default:0"`
	IsSuperuser  bool   `gorm:"type:tinyint(1);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Posts []Post `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
