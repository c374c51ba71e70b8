package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/logicshrey/Learnopolis-v2/internal/repository"
	"github.com/logicshrey/Learnopolis-v2/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	leaderboardSize     = 50
	leaderboardCacheKey = "leaderboard:points"
	leaderboardCacheTTL = time.Minute
)

type LeaderboardService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
}

func NewLeaderboardService(userRepo *repository.UserRepository, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{UserRepo: userRepo, Redis: rdb}
}

type LeaderboardEntry struct {
	UserID           uint   `json:"userId"`
	Name             string `json:"name"`
	Avatar           string `json:"avatar"`
	Level            int    `json:"level"`
	Points           int    `json:"points"`
	CoursesCompleted int    `json:"coursesCompleted"`
}

// GetLeaderboard 按积分取前50名，结果缓存1分钟
func (s *LeaderboardService) GetLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		}
	}

	users, err := s.UserRepo.FindTopByPoints(leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, user := range users {
		completed := 0
		for _, progress := range user.Progress {
			if progress.Completed {
				completed++
			}
		}
		entries[i] = LeaderboardEntry{
			UserID:           user.ID,
			Name:             user.Name,
			Avatar:           user.Avatar,
			Level:            user.Level,
			Points:           user.Points,
			CoursesCompleted: completed,
		}
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := s.Redis.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache leaderboard", zap.Error(err))
			}
		}
	}

	return entries, nil
}
