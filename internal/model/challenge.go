package model

import "time"

type ChallengeRequirement string

const (
	RequireModulesCompleted ChallengeRequirement = "modules_completed"
	RequireQuizScore        ChallengeRequirement = "quiz_score"
	RequirePointsEarned     ChallengeRequirement = "points_earned"
)

// swagger:model DailyChallenge
type DailyChallenge struct {
	BaseModel
	Date             time.Time            `gorm:"uniqueIndex;not null" json:"date"` // 当天零点
	Title            string               `gorm:"size:255;not null" json:"title"`
	Description      string               `gorm:"type:text" json:"description"`
	RequirementType  ChallengeRequirement `gorm:"type:enum('modules_completed','quiz_score','points_earned');not null" json:"requirementType"`
	RequirementCount int                  `gorm:"default:0" json:"requirementCount"`
	RewardPoints     int                  `gorm:"default:0" json:"rewardPoints"`
	RewardStreak     int                  `gorm:"default:0" json:"rewardStreak"`
}

func (DailyChallenge) TableName() string {
	return "daily_challenges"
}

type UserChallenge struct {
	BaseModel
	UserID      uint       `gorm:"uniqueIndex:idx_user_challenge;type:bigint unsigned" json:"userId"`
	ChallengeID uint       `gorm:"uniqueIndex:idx_user_challenge;type:bigint unsigned" json:"challengeId"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (UserChallenge) TableName() string {
	return "user_challenges"
}
