package service

import (
	"context"
	"errors"
	"time"

	"github.com/logicshrey/Learnopolis-v2/internal/model"
	"github.com/logicshrey/Learnopolis-v2/internal/repository"
	"github.com/logicshrey/Learnopolis-v2/internal/util"

	"gorm.io/gorm"
)

const (
	courseCompletionPoints = 500
	pointsPerLevel         = 1000
)

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	ProgressRepo   *repository.ProgressRepository
	UserRepo       *repository.UserRepository
	Recommendation *RecommendationService
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	progressRepo *repository.ProgressRepository,
	userRepo *repository.UserRepository,
	recommendation *RecommendationService,
) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		ProgressRepo:   progressRepo,
		UserRepo:       userRepo,
		Recommendation: recommendation,
	}
}

func (s *CourseService) Search(filter repository.CourseFilter) ([]model.Course, int64, error) {
	return s.CourseRepo.Search(filter)
}

func (s *CourseService) GetFeatured() ([]model.Course, error) {
	return s.CourseRepo.FindFeatured(6)
}

func (s *CourseService) GetByID(id uint) (*model.Course, error) {
	return s.CourseRepo.FindByID(id)
}

// Enroll 报名课程：建进度记录、课程热度+1、首次报名解锁成就
func (s *CourseService) Enroll(ctx context.Context, userID, courseID uint) error {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}

	if _, err := s.ProgressRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	progress := &model.UserProgress{
		UserID:           userID,
		CourseID:         courseID,
		CompletedModules: []int{},
		QuizScores:       map[int]float64{},
	}
	if err := s.ProgressRepo.Create(progress); err != nil {
		return err
	}

	if err := s.CourseRepo.IncrementEnrollment(courseID); err != nil {
		return err
	}

	s.unlockAchievement(userID, "first_enrollment", "Getting Started",
		"Enrolled in your first course", "🎓")

	s.Recommendation.InvalidateCache(ctx, userID)
	return nil
}

func (s *CourseService) GetProgress(userID, courseID uint) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotEnrolled
		}
		return nil, err
	}
	return progress, nil
}

// UpdateProgress 记录模块完成与测验分数。
// 全部模块完成时标记课程完成、奖励积分并按积分重算等级。
func (s *CourseService) UpdateProgress(ctx context.Context, userID, courseID uint, moduleIndex int, score float64) (*model.UserProgress, error) {
	progress, err := s.GetProgress(userID, courseID)
	if err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}

	alreadyCompleted := false
	for _, idx := range progress.CompletedModules {
		if idx == moduleIndex {
			alreadyCompleted = true
			break
		}
	}
	if !alreadyCompleted {
		progress.CompletedModules = append(progress.CompletedModules, moduleIndex)
	}

	if progress.QuizScores == nil {
		progress.QuizScores = map[int]float64{}
	}
	progress.QuizScores[moduleIndex] = score

	if !progress.Completed && len(course.Modules) > 0 && len(progress.CompletedModules) >= len(course.Modules) {
		progress.Completed = true

		if err := s.awardPoints(userID, courseCompletionPoints); err != nil {
			return nil, err
		}
		s.unlockAchievement(userID, "first_completion", "Course Conqueror",
			"Completed your first course", "🏆")
	}

	if err := s.ProgressRepo.Update(progress); err != nil {
		return nil, err
	}

	s.Recommendation.InvalidateCache(ctx, userID)
	return progress, nil
}

// awardPoints 给用户加积分并按积分重算等级
func (s *CourseService) awardPoints(userID uint, points int) error {
	if err := s.UserRepo.AddPoints(userID, points); err != nil {
		return err
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}

	newLevel := user.Points/pointsPerLevel + 1
	if newLevel > user.Level {
		user.Level = newLevel
		return s.UserRepo.Update(user)
	}
	return nil
}

func (s *CourseService) unlockAchievement(userID uint, code, title, description, icon string) {
	has, err := s.UserRepo.HasAchievement(userID, code)
	if err != nil || has {
		return
	}
	// 解锁失败不阻断主流程
	_ = s.UserRepo.CreateAchievement(&model.Achievement{
		UserID:      userID,
		Code:        code,
		Title:       title,
		Description: description,
		Icon:        icon,
		UnlockedAt:  time.Now(),
	})
}
