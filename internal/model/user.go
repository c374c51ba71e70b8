package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('student','admin');default:'student'" json:"role"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	Points    int       `gorm:"default:0" json:"points"` // 学习积分，驱动等级与排行榜
	Level     int       `gorm:"default:1" json:"level"`
	Streak    int       `gorm:"default:0" json:"streak"` // 每日挑战连续天数
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`

	Progress     []UserProgress `gorm:"foreignKey:UserID" json:"progress,omitempty"`
	Achievements []Achievement  `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
}

func (User) TableName() string {
	return "users"
}
