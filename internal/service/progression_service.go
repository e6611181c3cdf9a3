package service

import (
	"codelearn_backend/internal/catalog"
	"codelearn_backend/internal/model"
	"codelearn_backend/internal/util"
	"codelearn_backend/pkg/logger"
	"codelearn_backend/pkg/monitoring"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ProgressStore 进度持久化，由 repository.ProgressRepository 实现
type ProgressStore interface {
	Get(userID uint, language, levelKey string) (*model.ExerciseProgress, error)
	ListByLevel(userID uint, language, level string) ([]model.ExerciseProgress, error)
	SaveDraft(userID uint, language, levelKey, code string) error
	RecordFailure(userID uint, language, levelKey, code string) error
	CompleteAndAdvance(userID uint, language, level string, index int, code string, points, advanceTo int) (bool, error)
	CountCompleted(userID uint, language, level string) (int64, error)
}

// StateStore 游标持久化，由 repository.ExerciseStateRepository 实现
type StateStore interface {
	GetCurrentIndex(userID uint, language, level string) (int, bool, error)
	SaveCurrentIndex(userID uint, language, level string, index int) error
}

type ProgressionService struct {
	Progress ProgressStore
	State    StateStore
}

func NewProgressionService(progress ProgressStore, state StateStore) *ProgressionService {
	return &ProgressionService{Progress: progress, State: state}
}

// ExerciseView 练习列表里单个练习的视图
type ExerciseView struct {
	Index       int      `json:"index"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Task        string   `json:"task"`
	InitialCode string   `json:"initialCode"`
	Hints       []string `json:"hints"`
	Points      int      `json:"points"`
	Completed   bool     `json:"completed"`
	Unlocked    bool     `json:"unlocked"`
	Code        string   `json:"code,omitempty"`
}

// LevelView (语言, 难度) 下的练习列表与游标
type LevelView struct {
	Language     string         `json:"language"`
	Level        string         `json:"level"`
	CurrentIndex int            `json:"currentIndex"`
	Total        int            `json:"total"`
	Exercises    []ExerciseView `json:"exercises"`
}

// SubmitResult 一次提交的裁定结果
type SubmitResult struct {
	Passed         bool `json:"passed"`
	AwardedPoints  int  `json:"awardedPoints"`
	NextIndex      int  `json:"nextIndex"`
	LevelCompleted bool `json:"levelCompleted"`
}

func (s *ProgressionService) lookup(language, level string) (*catalog.Set, error) {
	set, ok := catalog.Lookup(language, level)
	if ok {
		return set, nil
	}
	for _, known := range catalog.Languages() {
		if known == language {
			return nil, util.ErrLevelNotFound
		}
	}
	return nil, util.ErrLanguageNotFound
}

// completedSet 把持久化记录折叠成 index -> 已完成 的集合
func (s *ProgressionService) completedSet(userID uint, language, level string) (map[int]bool, map[int]string, error) {
	records, err := s.Progress.ListByLevel(userID, language, level)
	if err != nil {
		return nil, nil, err
	}
	completed := map[int]bool{}
	codes := map[int]string{}
	prefix := level + "-"
	for _, rec := range records {
		raw := strings.TrimPrefix(rec.LevelKey, prefix)
		index, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if rec.IsCompleted {
			completed[index] = true
		}
		if rec.Code != "" {
			codes[index] = rec.Code
		}
	}
	return completed, codes, nil
}

// unlocked 线性解锁：第 0 题始终解锁，其余题目要求前一题已完成
func unlocked(index int, completed map[int]bool) bool {
	return index == 0 || completed[index-1]
}

// ListLevel 返回练习列表视图，游标同 Resume 的裁定结果
func (s *ProgressionService) ListLevel(userID uint, language, level string) (*LevelView, error) {
	set, err := s.lookup(language, level)
	if err != nil {
		return nil, err
	}
	completed, codes, err := s.completedSet(userID, language, level)
	if err != nil {
		return nil, err
	}
	current, err := s.resumeIndex(userID, language, level, set, completed)
	if err != nil {
		return nil, err
	}

	views := make([]ExerciseView, set.Len())
	for i, ex := range set.Exercises {
		views[i] = ExerciseView{
			Index:       ex.Index,
			Title:       ex.Title,
			Description: ex.Description,
			Task:        ex.Task,
			InitialCode: ex.InitialCode,
			Hints:       ex.Hints,
			Points:      ex.Points,
			Completed:   completed[i],
			Unlocked:    unlocked(i, completed),
			Code:        codes[i],
		}
	}
	return &LevelView{
		Language:     language,
		Level:        level,
		CurrentIndex: current,
		Total:        set.Len(),
		Exercises:    views,
	}, nil
}

// Submit 裁定一次提交。通过时在一次事务里完成进度、游标与积分的更新；
// 游标推进到 min(index+1, N-1)，永不越过末题。
func (s *ProgressionService) Submit(userID uint, language, level string, index int, code string) (*SubmitResult, error) {
	set, err := s.lookup(language, level)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= set.Len() {
		return nil, util.ErrExerciseNotFound
	}
	if strings.TrimSpace(code) == "" {
		return nil, util.ErrEmptySubmission
	}

	completed, _, err := s.completedSet(userID, language, level)
	if err != nil {
		return nil, err
	}
	if !unlocked(index, completed) {
		return nil, util.ErrExerciseLocked
	}

	ex := set.Exercises[index]
	levelKey := catalog.LevelKey(level, index)

	if !ex.Validate(code) {
		if err := s.Progress.RecordFailure(userID, language, levelKey, code); err != nil {
			logger.Log.Warn("记录未通过提交失败",
				zap.Uint("user_id", userID), zap.String("level_key", levelKey), zap.Error(err))
		}
		monitoring.RecordExerciseSubmission(language, level, "failed")
		return &SubmitResult{Passed: false, NextIndex: index}, nil
	}

	advanceTo := index + 1
	if advanceTo >= set.Len() {
		advanceTo = set.Len() - 1
	}
	awarded, err := s.Progress.CompleteAndAdvance(userID, language, level, index, code, ex.Points, advanceTo)
	if err != nil {
		return nil, err
	}

	completed[index] = true
	levelDone := true
	for i := 0; i < set.Len(); i++ {
		if !completed[i] {
			levelDone = false
			break
		}
	}

	result := &SubmitResult{
		Passed:         true,
		NextIndex:      advanceTo,
		LevelCompleted: levelDone,
	}
	if awarded {
		result.AwardedPoints = ex.Points
	}
	monitoring.RecordExerciseSubmission(language, level, "passed")
	return result, nil
}

// Navigate 把游标移到 target。目标必须存在且已解锁。
func (s *ProgressionService) Navigate(userID uint, language, level string, target int) error {
	set, err := s.lookup(language, level)
	if err != nil {
		return err
	}
	if target < 0 || target >= set.Len() {
		return util.ErrExerciseNotFound
	}
	completed, _, err := s.completedSet(userID, language, level)
	if err != nil {
		return err
	}
	if !unlocked(target, completed) {
		return util.ErrExerciseLocked
	}
	return s.State.SaveCurrentIndex(userID, language, level, target)
}

// Resume 返回恢复会话时应落在的练习下标
func (s *ProgressionService) Resume(userID uint, language, level string) (int, error) {
	set, err := s.lookup(language, level)
	if err != nil {
		return 0, err
	}
	completed, _, err := s.completedSet(userID, language, level)
	if err != nil {
		return 0, err
	}
	return s.resumeIndex(userID, language, level, set, completed)
}

// resumeIndex 有存储游标时用它（截断到 [0, N-1] 并退回解锁边界内），
// 否则落在第一个未完成的练习上；全部完成则停在末题。
func (s *ProgressionService) resumeIndex(userID uint, language, level string, set *catalog.Set, completed map[int]bool) (int, error) {
	index, found, err := s.State.GetCurrentIndex(userID, language, level)
	if err != nil {
		return 0, err
	}
	if !found {
		return firstIncomplete(set.Len(), completed), nil
	}
	if index < 0 {
		index = 0
	}
	if index >= set.Len() {
		index = set.Len() - 1
	}
	for index > 0 && !unlocked(index, completed) {
		index--
	}
	return index, nil
}

func firstIncomplete(total int, completed map[int]bool) int {
	for i := 0; i < total; i++ {
		if !completed[i] {
			return i
		}
	}
	return total - 1
}

// SaveDraft 保存练习草稿，不判题不推进
func (s *ProgressionService) SaveDraft(userID uint, language, level string, index int, code string) error {
	set, err := s.lookup(language, level)
	if err != nil {
		return err
	}
	if index < 0 || index >= set.Len() {
		return util.ErrExerciseNotFound
	}
	return s.Progress.SaveDraft(userID, language, catalog.LevelKey(level, index), code)
}
