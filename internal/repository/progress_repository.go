package repository

import (
	"codelearn_backend/internal/catalog"
	"codelearn_backend/internal/model"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Get(userID uint, language, levelKey string) (*model.ExerciseProgress, error) {
	var progress model.ExerciseProgress
	err := r.DB.Where("user_id = ? AND language = ? AND level_key = ?", userID, language, levelKey).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// ListByLevel 取某用户在 (语言, 难度) 下的全部进度记录
func (r *ProgressRepository) ListByLevel(userID uint, language, level string) ([]model.ExerciseProgress, error) {
	var records []model.ExerciseProgress
	err := r.DB.Where("user_id = ? AND language = ? AND level_key LIKE ?", userID, language, level+"-%").
		Find(&records).Error
	return records, err
}

// SaveDraft 草稿仅更新代码，不触碰完成状态
func (r *ProgressRepository) SaveDraft(userID uint, language, levelKey, code string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var progress model.ExerciseProgress
		err := tx.Where("user_id = ? AND language = ? AND level_key = ?", userID, language, levelKey).
			First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&model.ExerciseProgress{
				UserID:   userID,
				Language: language,
				LevelKey: levelKey,
				Code:     code,
			}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&progress).Update("code", code).Error
	})
}

// RecordFailure 保存一次未通过的提交代码
func (r *ProgressRepository) RecordFailure(userID uint, language, levelKey, code string) error {
	return r.SaveDraft(userID, language, levelKey, code)
}

// CompleteAndAdvance 一次事务内完成三件事：进度记录置为已完成、
// 游标推进到 advanceTo、首次完成时给用户发放积分。
// 返回本次是否发放了积分（重复提交已完成的练习不再发放）。
func (r *ProgressRepository) CompleteAndAdvance(userID uint, language, level string, index int, code string, points, advanceTo int) (bool, error) {
	levelKey := catalog.LevelKey(level, index)
	awarded := false

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		var progress model.ExerciseProgress
		err := tx.Where("user_id = ? AND language = ? AND level_key = ?", userID, language, levelKey).
			First(&progress).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			awarded = true
			if err := tx.Create(&model.ExerciseProgress{
				UserID:      userID,
				Language:    language,
				LevelKey:    levelKey,
				Code:        code,
				IsCompleted: true,
				Points:      points,
				SubmittedAt: &now,
			}).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		case !progress.IsCompleted:
			awarded = true
			if err := tx.Model(&progress).Updates(map[string]interface{}{
				"code":         code,
				"is_completed": true,
				"points":       points,
				"submitted_at": now,
			}).Error; err != nil {
				return err
			}
		default:
			// 已完成的练习重复通过：只刷新代码
			if err := tx.Model(&progress).Update("code", code).Error; err != nil {
				return err
			}
		}

		var state model.ExerciseState
		err = tx.Where("user_id = ? AND language = ? AND level = ?", userID, language, level).
			First(&state).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.ExerciseState{
				UserID:       userID,
				Language:     language,
				Level:        level,
				CurrentIndex: advanceTo,
			}).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&state).Update("current_index", advanceTo).Error; err != nil {
				return err
			}
		}

		if awarded {
			if err := tx.Model(&model.User{}).Where("id = ?", userID).
				Update("points", gorm.Expr("points + ?", points)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return awarded, nil
}

// CountCompleted 某用户在 (语言, 难度) 下已完成的练习数
func (r *ProgressRepository) CountCompleted(userID uint, language, level string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ExerciseProgress{}).
		Where("user_id = ? AND language = ? AND level_key LIKE ? AND is_completed = ?",
			userID, language, level+"-%", true).
		Count(&count).Error
	return count, err
}
