package repository

import (
	"codelearn_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type ExerciseStateRepository struct {
	DB *gorm.DB
}

func NewExerciseStateRepository(db *gorm.DB) *ExerciseStateRepository {
	return &ExerciseStateRepository{DB: db}
}

// GetCurrentIndex 没有记录时返回 (0, false, nil)
func (r *ExerciseStateRepository) GetCurrentIndex(userID uint, language, level string) (int, bool, error) {
	var state model.ExerciseState
	err := r.DB.Where("user_id = ? AND language = ? AND level = ?", userID, language, level).
		First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return state.CurrentIndex, true, nil
}

func (r *ExerciseStateRepository) SaveCurrentIndex(userID uint, language, level string, index int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var state model.ExerciseState
		err := tx.Where("user_id = ? AND language = ? AND level = ?", userID, language, level).
			First(&state).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&model.ExerciseState{
				UserID:       userID,
				Language:     language,
				Level:        level,
				CurrentIndex: index,
			}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&state).Update("current_index", index).Error
	})
}
