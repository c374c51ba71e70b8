package service

import (
	"errors"
	"time"

	"github.com/logicshrey/Learnopolis-v2/internal/model"
	"github.com/logicshrey/Learnopolis-v2/internal/repository"
	"github.com/logicshrey/Learnopolis-v2/internal/util"
	"github.com/logicshrey/Learnopolis-v2/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ChallengeService struct {
	ChallengeRepo *repository.ChallengeRepository
	UserRepo      *repository.UserRepository
	ProgressRepo  *repository.ProgressRepository
}

func NewChallengeService(
	challengeRepo *repository.ChallengeRepository,
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
) *ChallengeService {
	return &ChallengeService{
		ChallengeRepo: challengeRepo,
		UserRepo:      userRepo,
		ProgressRepo:  progressRepo,
	}
}

type ChallengeWithStatus struct {
	Challenge model.DailyChallenge `json:"challenge"`
	Completed bool                 `json:"completed"`
	Progress  int64                `json:"progress"` // 今日已推进的课程数
}

// GetTodayChallenge 取今日挑战，没有则生成默认的学习冲刺挑战
func (s *ChallengeService) GetTodayChallenge(userID uint) (*ChallengeWithStatus, error) {
	today := startOfToday()

	challenge, err := s.ChallengeRepo.FindByDate(today)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		challenge = &model.DailyChallenge{
			Date:             today,
			Title:            "Daily Learning Sprint",
			Description:      "Complete 3 modules today",
			RequirementType:  model.RequireModulesCompleted,
			RequirementCount: 3,
			RewardPoints:     100,
			RewardStreak:     1,
		}
		if err := s.ChallengeRepo.Create(challenge); err != nil {
			return nil, err
		}
		logger.Log.Info("Created daily challenge", zap.String("date", today.Format(util.DateFormat)))
	} else if err != nil {
		return nil, err
	}

	status := &ChallengeWithStatus{Challenge: *challenge}
	if uc, err := s.ChallengeRepo.FindUserChallenge(userID, challenge.ID); err == nil {
		status.Completed = uc.Completed
	}
	if n, err := s.ProgressRepo.CountCompletedToday(userID); err == nil {
		status.Progress = n
	}
	return status, nil
}

// CompleteChallenge 标记挑战完成并发放积分与连续天数奖励
func (s *ChallengeService) CompleteChallenge(userID, challengeID uint) (*model.User, error) {
	challenge, err := s.ChallengeRepo.FindByID(challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChallengeNotFound
		}
		return nil, err
	}

	if _, err := s.ChallengeRepo.FindUserChallenge(userID, challenge.ID); err == nil {
		return nil, util.ErrChallengeCompleted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Points += challenge.RewardPoints
	user.Streak += challenge.RewardStreak
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.ChallengeRepo.CreateUserChallenge(&model.UserChallenge{
		UserID:      userID,
		ChallengeID: challenge.ID,
		Completed:   true,
		CompletedAt: &now,
	}); err != nil {
		return nil, err
	}

	return user, nil
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
