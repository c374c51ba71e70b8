package repository

import (
	"time"

	"github.com/logicshrey/Learnopolis-v2/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	DB *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{DB: db}
}

func (r *VideoRepository) Create(video *model.Video) error {
	return r.DB.Create(video).Error
}

func (r *VideoRepository) FindByID(id uint) (*model.Video, error) {
	var video model.Video
	err := r.DB.First(&video, id).Error
	return &video, err
}

func (r *VideoRepository) Find(subject, difficulty string) ([]model.Video, error) {
	query := r.DB.Model(&model.Video{})
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var videos []model.Video
	err := query.Order("created_at DESC").Find(&videos).Error
	return videos, err
}

// Delete 连同观看记录一起删
func (r *VideoRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&model.UserVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Video{}, id).Error
	})
}

// MarkCompleted 重复观看只保留一条记录
func (r *VideoRepository) MarkCompleted(userID, videoID uint) error {
	record := model.UserVideo{
		UserID:    userID,
		VideoID:   videoID,
		Completed: true,
		WatchedAt: time.Now(),
	}
	return r.DB.Where("user_id = ? AND video_id = ?", userID, videoID).
		FirstOrCreate(&record).Error
}

func (r *VideoRepository) FindCompletedIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.UserVideo{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Pluck("video_id", &ids).Error
	return ids, err
}
