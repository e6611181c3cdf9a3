package service

import (
	"codelearn_backend/internal/catalog"
	"codelearn_backend/internal/repository"
	"codelearn_backend/pkg/logger"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	leaderboardCacheKey = "stats:leaderboard"
	leaderboardCacheTTL = 60 * time.Second
	leaderboardSize     = 20
)

type StatsService struct {
	UserRepo *repository.UserRepository
	Progress ProgressStore
	Redis    *redis.Client
}

func NewStatsService(userRepo *repository.UserRepository, progress ProgressStore, rdb *redis.Client) *StatsService {
	return &StatsService{
		UserRepo: userRepo,
		Progress: progress,
		Redis:    rdb,
	}
}

// LevelCompletion 某 (语言, 难度) 的完成度
type LevelCompletion struct {
	Level     string `json:"level"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// LanguageCompletion 某语言下全部难度的完成度
type LanguageCompletion struct {
	Language string            `json:"language"`
	Levels   []LevelCompletion `json:"levels"`
}

// Completion 汇总用户在全部语言上的练习完成度
func (s *StatsService) Completion(userID uint) ([]LanguageCompletion, error) {
	result := make([]LanguageCompletion, 0, len(catalog.Languages()))
	for _, language := range catalog.Languages() {
		entry := LanguageCompletion{Language: language}
		for _, level := range catalog.Levels() {
			set, ok := catalog.Lookup(language, level)
			if !ok {
				continue
			}
			completed, err := s.Progress.CountCompleted(userID, language, level)
			if err != nil {
				return nil, err
			}
			entry.Levels = append(entry.Levels, LevelCompletion{
				Level:     level,
				Completed: int(completed),
				Total:     set.Len(),
			})
		}
		result = append(result, entry)
	}
	return result, nil
}

// LeaderboardEntry 排行榜单项
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Avatar string `json:"avatar,omitempty"`
}

// Leaderboard 积分榜前 20 名，Redis 缓存 60 秒
func (s *StatsService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result()
		if err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		}
	}

	users, err := s.UserRepo.TopByPoints(leaderboardSize)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = LeaderboardEntry{
			Rank:   i + 1,
			Name:   u.Name,
			Points: u.Points,
			Avatar: u.Avatar,
		}
	}

	if s.Redis != nil {
		data, err := json.Marshal(entries)
		if err == nil {
			if err := s.Redis.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("排行榜写缓存失败", zap.Error(err))
			}
		}
	}
	return entries, nil
}

// InvalidateLeaderboard 积分变动后失效缓存
func (s *StatsService) InvalidateLeaderboard(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, leaderboardCacheKey).Err(); err != nil {
		logger.Log.Warn("排行榜缓存失效失败", zap.Error(err))
	}
}

// UserRank 名次按积分严格高于自己的人数 +1 计算，积分相同并列
type UserRank struct {
	Rank   int   `json:"rank"`
	Points int   `json:"points"`
	Total  int64 `json:"total"`
}

func (s *StatsService) Rank(userID uint) (*UserRank, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	higher, err := s.UserRepo.CountWithMorePoints(user.Points)
	if err != nil {
		return nil, err
	}
	total, err := s.UserRepo.CountAll()
	if err != nil {
		return nil, err
	}
	return &UserRank{
		Rank:   int(higher) + 1,
		Points: user.Points,
		Total:  total,
	}, nil
}
