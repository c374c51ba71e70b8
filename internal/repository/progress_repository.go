package repository

import (
	"github.com/logicshrey/Learnopolis-v2/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.UserProgress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) Update(progress *model.UserProgress) error {
	return r.DB.Save(progress).Error
}

func (r *ProgressRepository) FindByUserAndCourse(userID, courseID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&progress).Error
	return &progress, err
}

// FindByUser 带课程（含模块）的完整学习历史，画像构建的输入
func (r *ProgressRepository) FindByUser(userID uint) ([]model.UserProgress, error) {
	var progress []model.UserProgress
	err := r.DB.Preload("Course.Modules").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&progress).Error
	return progress, err
}

func (r *ProgressRepository) CountCompletedToday(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ? AND DATE(updated_at) = CURDATE()", userID).
		Count(&count).Error
	return count, err
}
