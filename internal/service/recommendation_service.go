package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/logicshrey/Learnopolis-v2/internal/model"
	"github.com/logicshrey/Learnopolis-v2/internal/repository"
	"github.com/logicshrey/Learnopolis-v2/pkg/logger"
	"github.com/logicshrey/Learnopolis-v2/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// 推荐评分权重。调权只改这里，不要动控制流。
const (
	subjectAffinityScale = 0.5
	subjectAffinityCap   = 5.0

	difficultyMatchScore = 3.0
	difficultyNearScore  = 2.0
	difficultyFarScore   = 1.0

	difficultyPrefScale = 0.5
	difficultyPrefCap   = 2.0

	paceBonusMajor = 2.0
	paceBonusMinor = 1.0

	popularityDivisor = 100.0
	popularityCap     = 1.0

	// 每个陌生学科加0.5分，不封顶
	noveltyPerSubject = 0.5

	maxRecommendations = 6

	// 学习节奏判定阈值
	fastCompletionRate = 0.8
	slowCompletionRate = 0.5
	highQuizScore      = 80.0
	lowQuizScore       = 70.0

	recommendationCacheTTL = 10 * time.Minute
)

// UserProfile 从用户学习历史推导出的画像，每次请求重建，不落库
type UserProfile struct {
	SubjectWeights     map[string]float64
	DifficultyWeights  map[model.CourseDifficulty]float64
	AvgCompletionRate  float64
	AvgQuizScore       float64
	Level              int
	CompletedCourseIDs map[uint]struct{}
	EnrolledCourseIDs  map[uint]struct{}
	HistoryCount       int
}

// ScoredCourse 推荐结果，分数仅内部使用
type ScoredCourse struct {
	Course model.Course `json:"course"`
	Score  float64      `json:"-"`
	Reason string       `json:"reason"`
}

type RecommendationService struct {
	UserRepo     *repository.UserRepository
	CourseRepo   *repository.CourseRepository
	ProgressRepo *repository.ProgressRepository
	Redis        *redis.Client
}

func NewRecommendationService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	progressRepo *repository.ProgressRepository,
	rdb *redis.Client,
) *RecommendationService {
	return &RecommendationService{
		UserRepo:     userRepo,
		CourseRepo:   courseRepo,
		ProgressRepo: progressRepo,
		Redis:        rdb,
	}
}

// BuildUserProfile 单次遍历学习历史构建画像。
// 课程引用优先使用已预加载的 Course，否则通过 catalog 按ID解析；
// 解析不到的记录不贡献权重，但仍计入已报名集合。
func BuildUserProfile(user *model.User, history []model.UserProgress, catalog map[uint]*model.Course) *UserProfile {
	profile := &UserProfile{
		SubjectWeights:     make(map[string]float64),
		DifficultyWeights:  make(map[model.CourseDifficulty]float64),
		Level:              1,
		CompletedCourseIDs: make(map[uint]struct{}),
		EnrolledCourseIDs:  make(map[uint]struct{}),
		HistoryCount:       len(history),
	}
	if user != nil && user.Level > 1 {
		profile.Level = user.Level
	}

	var completionSum float64
	var completionCount int
	var quizSum float64
	var quizCount int

	for i := range history {
		entry := &history[i]

		if entry.CourseID != 0 {
			profile.EnrolledCourseIDs[entry.CourseID] = struct{}{}
			if entry.Completed {
				profile.CompletedCourseIDs[entry.CourseID] = struct{}{}
			}
		}

		course := entry.Course
		if course == nil {
			course = catalog[entry.CourseID]
		}

		if course != nil {
			// 已完成的课程权重加倍
			weight := 1.0
			if entry.Completed {
				weight = 2.0
			}
			for _, subject := range course.Subjects {
				profile.SubjectWeights[subject] += weight
			}
			profile.DifficultyWeights[course.Difficulty] += weight

			if len(course.Modules) > 0 {
				completionSum += float64(len(entry.CompletedModules)) / float64(len(course.Modules))
				completionCount++
			}
		}

		for _, score := range entry.QuizScores {
			quizSum += score
			quizCount++
		}
	}

	if completionCount > 0 {
		profile.AvgCompletionRate = completionSum / float64(completionCount)
	}
	if quizCount > 0 {
		profile.AvgQuizScore = quizSum / float64(quizCount)
	}

	return profile
}

// Recommend 对目录打分排序并取前6，已在 exclude 中的课程一律不出现。
// 冷启动（无历史）时退化为按报名人数排序的热门课程。
func Recommend(profile *UserProfile, catalog []model.Course, exclude map[uint]struct{}) []ScoredCourse {
	candidates := make([]model.Course, 0, len(catalog))
	for _, course := range catalog {
		if _, excluded := exclude[course.ID]; excluded {
			continue
		}
		candidates = append(candidates, course)
	}

	if profile == nil || profile.HistoryCount == 0 {
		return popularFallback(profile, candidates)
	}

	scored := make([]ScoredCourse, len(candidates))
	for i, course := range candidates {
		scored[i] = ScoredCourse{
			Course: course,
			Score:  scoreCourse(&course, profile),
			Reason: recommendReason(profile, &course),
		}
	}

	// 并列时保持目录顺序
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}
	return scored
}

func popularFallback(profile *UserProfile, candidates []model.Course) []ScoredCourse {
	sorted := make([]model.Course, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EnrollmentCount > sorted[j].EnrollmentCount
	})

	if len(sorted) > maxRecommendations {
		sorted = sorted[:maxRecommendations]
	}

	scored := make([]ScoredCourse, len(sorted))
	for i, course := range sorted {
		scored[i] = ScoredCourse{
			Course: course,
			Score:  float64(course.EnrollmentCount),
			Reason: recommendReason(profile, &course),
		}
	}
	return scored
}

// scoreCourse 六项加分求和，各项非负
func scoreCourse(course *model.Course, profile *UserProfile) float64 {
	var score float64

	// 学科亲和度（封顶5分）
	var affinity float64
	for _, subject := range course.Subjects {
		affinity += profile.SubjectWeights[subject] * subjectAffinityScale
	}
	score += math.Min(affinity, subjectAffinityCap)

	// 难度契合度：课程难度层级 vs ceil(level/2)
	userTier := int(math.Ceil(float64(profile.Level) / 2))
	switch diff := abs(course.Difficulty.Tier() - userTier); diff {
	case 0:
		score += difficultyMatchScore
	case 1:
		score += difficultyNearScore
	default:
		score += difficultyFarScore
	}

	// 历史难度偏好（封顶2分）
	score += math.Min(profile.DifficultyWeights[course.Difficulty]*difficultyPrefScale, difficultyPrefCap)

	// 学习节奏：高分快学者推进阶，吃力者推基础，稳健者推中级
	switch {
	case profile.AvgCompletionRate > fastCompletionRate && profile.AvgQuizScore > highQuizScore:
		if course.Difficulty == model.DifficultyAdvanced {
			score += paceBonusMajor
		} else if course.Difficulty == model.DifficultyIntermediate {
			score += paceBonusMinor
		}
	case profile.AvgCompletionRate < slowCompletionRate || profile.AvgQuizScore < lowQuizScore:
		if course.Difficulty == model.DifficultyBeginner {
			score += paceBonusMajor
		} else if course.Difficulty == model.DifficultyIntermediate {
			score += paceBonusMinor
		}
	default:
		if course.Difficulty == model.DifficultyIntermediate {
			score += paceBonusMajor
		} else {
			score += paceBonusMinor
		}
	}

	// 热度（封顶1分）
	score += math.Min(float64(course.EnrollmentCount)/popularityDivisor, popularityCap)

	// 新学科探索加分
	for _, subject := range course.Subjects {
		if profile.SubjectWeights[subject] < 1 {
			score += noveltyPerSubject
		}
	}

	return score
}

// recommendReason 生成展示用的推荐理由，按优先级取第一条命中
func recommendReason(profile *UserProfile, course *model.Course) string {
	if profile == nil || profile.HistoryCount == 0 {
		return "Popular course for beginners"
	}

	var matching []string
	for _, subject := range course.Subjects {
		if profile.SubjectWeights[subject] > 0 {
			matching = append(matching, subject)
		}
	}

	switch {
	case len(matching) > 0:
		return "Based on your interest in " + strings.Join(matching, ", ")
	case course.EnrollmentCount > 200:
		return "Highly rated by other students"
	case course.Difficulty == model.DifficultyBeginner && profile.Level < 3:
		return "Great for your current level"
	case course.Difficulty == model.DifficultyIntermediate && profile.Level >= 3 && profile.Level <= 5:
		return "Matches your skill level"
	case course.Difficulty == model.DifficultyAdvanced && profile.Level > 5:
		return "Challenge yourself with advanced content"
	default:
		return "Expand your knowledge in a new area"
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// GetRecommendations 为用户生成个性化推荐，结果短暂缓存
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID uint) ([]ScoredCourse, error) {
	cacheKey := recommendationCacheKey(userID)
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var recommendations []ScoredCourse
			if err := json.Unmarshal([]byte(cached), &recommendations); err == nil {
				monitoring.RecommendationCacheHits.WithLabelValues("hit").Inc()
				return recommendations, nil
			}
		}
		monitoring.RecommendationCacheHits.WithLabelValues("miss").Inc()
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	history, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	lookup := make(map[uint]*model.Course, len(catalog))
	for i := range catalog {
		lookup[catalog[i].ID] = &catalog[i]
	}

	profile := BuildUserProfile(user, history, lookup)
	recommendations := Recommend(profile, catalog, profile.EnrolledCourseIDs)

	if s.Redis != nil {
		if payload, err := json.Marshal(recommendations); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, recommendationCacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache recommendations", zap.Uint("userID", userID), zap.Error(err))
			}
		}
	}

	return recommendations, nil
}

// InvalidateCache 报名或进度变化后让推荐缓存失效
func (s *RecommendationService) InvalidateCache(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, recommendationCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate recommendation cache", zap.Uint("userID", userID), zap.Error(err))
	}
}

func recommendationCacheKey(userID uint) string {
	return fmt.Sprintf("recommendations:user:%d", userID)
}
