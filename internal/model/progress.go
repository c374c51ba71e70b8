package model

// UserProgress 记录用户在某门课程上的报名与学习进度
type UserProgress struct {
	BaseModel
	UserID           uint            `gorm:"uniqueIndex:idx_user_course;type:bigint unsigned" json:"userId"`
	CourseID         uint            `gorm:"uniqueIndex:idx_user_course;index;type:bigint unsigned" json:"courseId"`
	Course           *Course         `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	CompletedModules []int           `gorm:"type:json;serializer:json" json:"completedModules"`
	QuizScores       map[int]float64 `gorm:"type:json;serializer:json" json:"quizScores"`
	Completed        bool            `gorm:"default:false" json:"completed"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
