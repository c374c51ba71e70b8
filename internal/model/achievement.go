package model

import "time"

// swagger:model Achievement
type Achievement struct {
	BaseModel
	UserID      uint      `gorm:"index;type:bigint unsigned" json:"userId"`
	Code        string    `gorm:"size:50;index" json:"code"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:255" json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}
