package repository

import (
	"github.com/logicshrey/Learnopolis-v2/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(feedback *model.Feedback) error {
	return r.DB.Create(feedback).Error
}

func (r *FeedbackRepository) List(limit int) ([]model.Feedback, error) {
	var feedback []model.Feedback
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&feedback).Error
	return feedback, err
}
