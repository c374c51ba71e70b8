package model

import "time"

// swagger:model Video
type Video struct {
	BaseModel
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Subject     string           `gorm:"size:100;index" json:"subject"`
	Difficulty  CourseDifficulty `gorm:"type:enum('beginner','intermediate','advanced');not null" json:"difficulty"`
	Duration    float64          `gorm:"default:0" json:"duration"` // 秒
	URL         string           `gorm:"size:512" json:"url"`
	Thumbnail   string           `gorm:"size:512" json:"thumbnail"`
	ObjectKey   string           `gorm:"size:512" json:"-"`
}

func (Video) TableName() string {
	return "videos"
}

// UserVideo 一个用户对一个视频至多一条观看记录
type UserVideo struct {
	BaseModel
	UserID    uint      `gorm:"uniqueIndex:idx_user_video;type:bigint unsigned" json:"userId"`
	VideoID   uint      `gorm:"uniqueIndex:idx_user_video;type:bigint unsigned" json:"videoId"`
	Completed bool      `gorm:"default:true" json:"completed"`
	WatchedAt time.Time `json:"watchedAt"`
}

func (UserVideo) TableName() string {
	return "user_videos"
}
