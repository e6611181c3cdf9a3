package repository

import (
	"codelearn_backend/internal/model"

	"gorm.io/gorm"
)

type ReviewLogRepository struct {
	DB *gorm.DB
}

func NewReviewLogRepository(db *gorm.DB) *ReviewLogRepository {
	return &ReviewLogRepository{DB: db}
}

func (r *ReviewLogRepository) Create(log *model.ReviewRequestLog) error {
	return r.DB.Create(log).Error
}

func (r *ReviewLogRepository) ListByUser(userID uint, limit int) ([]model.ReviewRequestLog, error) {
	var logs []model.ReviewRequestLog
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
