package service

import (
	"codelearn_backend/internal/model"
	"math/rand"
)

// TemplateStore 反馈模板读取，由 repository.FeedbackTemplateRepository 实现
type TemplateStore interface {
	ListByLevel(language, level string) ([]model.FeedbackTemplate, error)
	ListByCategory(language, level, category string) ([]model.FeedbackTemplate, error)
}

type FeedbackService struct {
	Templates TemplateStore
}

func NewFeedbackService(templates TemplateStore) *FeedbackService {
	return &FeedbackService{Templates: templates}
}

// LevelFeedback 按类别分组的模板视图
type LevelFeedback struct {
	Language    string   `json:"language"`
	Level       string   `json:"level"`
	SyntaxError []string `json:"syntaxError"`
	Hints       []string `json:"hints"`
	Suggestions []string `json:"suggestions"`
}

func (s *FeedbackService) ListByLevel(language, level string) (*LevelFeedback, error) {
	templates, err := s.Templates.ListByLevel(language, level)
	if err != nil {
		return nil, err
	}
	view := &LevelFeedback{Language: language, Level: level}
	for _, t := range templates {
		switch t.Category {
		case model.FeedbackSyntaxError:
			view.SyntaxError = append(view.SyntaxError, t.Message)
		case model.FeedbackHint:
			view.Hints = append(view.Hints, t.Message)
		case model.FeedbackSuggestion:
			view.Suggestions = append(view.Suggestions, t.Message)
		}
	}
	return view, nil
}

// Pick 在某类别下随机选一条，没有可用模板时回退到通用提示
func (s *FeedbackService) Pick(language, level, category string) string {
	templates, err := s.Templates.ListByCategory(language, level, category)
	if err != nil || len(templates) == 0 {
		return defaultFailureMessage
	}
	return templates[rand.Intn(len(templates))].Message
}

// FailureMessage 提交未通过时展示的鼓励性提示
func (s *FeedbackService) FailureMessage(language, level string) string {
	return s.Pick(language, level, model.FeedbackHint)
}

const defaultFailureMessage = "Not quite right. Review the task and try again!"
