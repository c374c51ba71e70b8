package model

// swagger:model Feedback
type Feedback struct {
	BaseModel
	UserID  uint   `gorm:"index;type:bigint unsigned" json:"userId"`
	Rating  int    `gorm:"default:0" json:"rating"` // 1-5
	Message string `gorm:"type:text" json:"message"`
	Page    string `gorm:"size:255" json:"page"`
}

func (Feedback) TableName() string {
	return "feedback"
}
