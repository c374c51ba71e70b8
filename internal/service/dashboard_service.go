package service

import (
	"context"

	"github.com/logicshrey/Learnopolis-v2/internal/model"
	"github.com/logicshrey/Learnopolis-v2/pkg/logger"

	"go.uber.org/zap"
)

type DashboardService struct {
	UserService           *UserService
	RecommendationService *RecommendationService
	LearningPathService   *LearningPathService
	ChallengeService      *ChallengeService
}

func NewDashboardService(
	userService *UserService,
	recommendationService *RecommendationService,
	learningPathService *LearningPathService,
	challengeService *ChallengeService,
) *DashboardService {
	return &DashboardService{
		UserService:           userService,
		RecommendationService: recommendationService,
		LearningPathService:   learningPathService,
		ChallengeService:      challengeService,
	}
}

// Dashboard 学生仪表盘：推荐课程、学习路径、统计、成就与今日挑战的组合视图
type Dashboard struct {
	Stats          *UserStats           `json:"stats"`
	Recommended    []ScoredCourse       `json:"recommendedCourses"`
	LearningPaths  []LearningPath       `json:"learningPaths"`
	Achievements   []model.Achievement  `json:"achievements"`
	DailyChallenge *ChallengeWithStatus `json:"dailyChallenge"`
}

// GetUserDashboard 各区块互不影响：推荐与路径引擎只会降级，不会报错；
// 其余区块取数失败则整体失败
func (s *DashboardService) GetUserDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	stats, err := s.UserService.GetStats(userID)
	if err != nil {
		return nil, err
	}

	recommended, err := s.RecommendationService.GetRecommendations(ctx, userID)
	if err != nil {
		logger.Log.Warn("Recommendations unavailable for dashboard", zap.Uint("userID", userID), zap.Error(err))
		recommended = nil
	}

	paths, err := s.LearningPathService.GetLearningPaths()
	if err != nil {
		logger.Log.Warn("Learning paths unavailable for dashboard", zap.Uint("userID", userID), zap.Error(err))
		paths = nil
	}

	achievements, err := s.UserService.GetAchievements(userID)
	if err != nil {
		return nil, err
	}

	challenge, err := s.ChallengeService.GetTodayChallenge(userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Stats:          stats,
		Recommended:    recommended,
		LearningPaths:  paths,
		Achievements:   achievements,
		DailyChallenge: challenge,
	}, nil
}
