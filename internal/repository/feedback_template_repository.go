package repository

import (
	"codelearn_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackTemplateRepository struct {
	DB *gorm.DB
}

func NewFeedbackTemplateRepository(db *gorm.DB) *FeedbackTemplateRepository {
	return &FeedbackTemplateRepository{DB: db}
}

func (r *FeedbackTemplateRepository) ListByLevel(language, level string) ([]model.FeedbackTemplate, error) {
	var templates []model.FeedbackTemplate
	err := r.DB.Where("language = ? AND level = ? AND enabled = ?", language, level, true).
		Find(&templates).Error
	return templates, err
}

func (r *FeedbackTemplateRepository) ListByCategory(language, level, category string) ([]model.FeedbackTemplate, error) {
	var templates []model.FeedbackTemplate
	err := r.DB.Where("language = ? AND level = ? AND category = ? AND enabled = ?",
		language, level, category, true).
		Find(&templates).Error
	return templates, err
}

func (r *FeedbackTemplateRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.FeedbackTemplate{}).Count(&count).Error
	return count, err
}

func (r *FeedbackTemplateRepository) CreateBatch(templates []model.FeedbackTemplate) error {
	if len(templates) == 0 {
		return nil
	}
	return r.DB.Create(&templates).Error
}
