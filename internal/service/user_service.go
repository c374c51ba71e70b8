package service

import (
	"math"

	"github.com/logicshrey/Learnopolis-v2/internal/model"
	"github.com/logicshrey/Learnopolis-v2/internal/repository"
)

type UserService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	FeedbackRepo *repository.FeedbackRepository
}

func NewUserService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	feedbackRepo *repository.FeedbackRepository,
) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		FeedbackRepo: feedbackRepo,
	}
}

type UserStats struct {
	TotalPoints       int     `json:"totalPoints"`
	Level             int     `json:"level"`
	CurrentStreak     int     `json:"currentStreak"`
	CoursesCompleted  int     `json:"coursesCompleted"`
	CoursesEnrolled   int     `json:"coursesEnrolled"`
	AverageQuizScore  float64 `json:"averageQuizScore"`
	NextLevelProgress float64 `json:"nextLevelProgress"` // 0-100
}

// GetStats 用户学习统计，升级进度按 points / ((level+1)*100)^1.5 计算
func (s *UserService) GetStats(userID uint) (*UserStats, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	history, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	completed := 0
	var scoreSum float64
	var scoreCount int
	for _, progress := range history {
		if progress.Completed {
			completed++
		}
		for _, score := range progress.QuizScores {
			scoreSum += score
			scoreCount++
		}
	}

	stats := &UserStats{
		TotalPoints:      user.Points,
		Level:            user.Level,
		CurrentStreak:    user.Streak,
		CoursesCompleted: completed,
		CoursesEnrolled:  len(history),
	}
	if scoreCount > 0 {
		stats.AverageQuizScore = scoreSum / float64(scoreCount)
	}

	pointsForNextLevel := math.Pow(float64(user.Level+1)*100, 1.5)
	if pointsForNextLevel > 0 {
		stats.NextLevelProgress = math.Min(float64(user.Points)/pointsForNextLevel*100, 100)
	}

	return stats, nil
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

func (s *UserService) UpdateProfile(userID uint, name, avatar string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if avatar != "" {
		user.Avatar = avatar
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetAchievements(userID uint) ([]model.Achievement, error) {
	return s.UserRepo.GetAchievements(userID)
}

func (s *UserService) SubmitFeedback(feedback *model.Feedback) error {
	if feedback.Rating < 0 {
		feedback.Rating = 0
	}
	if feedback.Rating > 5 {
		feedback.Rating = 5
	}
	return s.FeedbackRepo.Create(feedback)
}

func (s *UserService) ListFeedback(limit int) ([]model.Feedback, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.FeedbackRepo.List(limit)
}
