package service

import (
	"bytes"
	"codelearn_backend/internal/config"
	"codelearn_backend/internal/model"
	"codelearn_backend/pkg/logger"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ReviewLogStore 评审调用留痕，由 repository.ReviewLogRepository 实现
type ReviewLogStore interface {
	Create(log *model.ReviewRequestLog) error
	ListByUser(userID uint, limit int) ([]model.ReviewRequestLog, error)
}

type AIReviewService struct {
	config config.AIConfig
	client *http.Client
	logs   ReviewLogStore
}

func NewAIReviewService(cfg config.AIConfig, logs ReviewLogStore) *AIReviewService {
	if cfg.APIKey == "" {
		// 不配 key 也允许启动，点评请求到时再报错
		logger.Log.Warn("AI api_key 未配置，代码点评调用将被上游拒绝")
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AIReviewService{
		config: cfg,
		client: &http.Client{Timeout: timeout},
		logs:   logs,
	}
}

type ReviewSuggestion struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type ReviewMeta struct {
	Model      string `json:"model"`
	DurationMs int64  `json:"durationMs"`
}

type ReviewResult struct {
	Suggestions []ReviewSuggestion `json:"suggestions"`
	Meta        ReviewMeta         `json:"meta"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const reviewSystemPrompt = "你是一名资深代码评审助手。请评审学生提交的代码，" +
	"只输出一个 JSON 对象，形如 {\"suggestions\":[{\"level\":\"info|warning|error\",\"message\":\"...\"}]}，" +
	"不要输出任何其他文字。message 使用学生提交所用的自然语言。"

// Review 调用模型评审一段代码。userID 为 0 表示匿名调用。
func (s *AIReviewService) Review(ctx context.Context, userID uint, code, language, task string) (*ReviewResult, error) {
	start := time.Now()

	userPrompt := fmt.Sprintf("语言: %s\n", language)
	if task != "" {
		userPrompt += fmt.Sprintf("练习要求: %s\n", task)
	}
	userPrompt += fmt.Sprintf("待评审代码:\n```\n%s\n```", code)

	reqBody := map[string]interface{}{
		"model": s.config.Model,
		"messages": []chatMessage{
			{Role: "system", Content: reviewSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.record(userID, language, time.Since(start), false, 0)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		s.record(userID, language, time.Since(start), false, 0)
		return nil, fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		s.record(userID, language, time.Since(start), false, 0)
		return nil, err
	}
	if completion.Error != nil {
		s.record(userID, language, time.Since(start), false, 0)
		return nil, fmt.Errorf("AI API error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		s.record(userID, language, time.Since(start), false, 0)
		return nil, fmt.Errorf("AI API returned no choices")
	}

	suggestions := parseSuggestions(completion.Choices[0].Message.Content)
	duration := time.Since(start)
	s.record(userID, language, duration, true, len(suggestions))

	return &ReviewResult{
		Suggestions: suggestions,
		Meta: ReviewMeta{
			Model:      s.config.Model,
			DurationMs: duration.Milliseconds(),
		},
	}, nil
}

// parseSuggestions 容错解析模型输出：优先整体按 JSON 解析；
// 失败则截取首个 {...} 片段再试；仍失败就把原文包装成一条 info 建议。
func parseSuggestions(content string) []ReviewSuggestion {
	var parsed struct {
		Suggestions []ReviewSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err == nil && len(parsed.Suggestions) > 0 {
		return parsed.Suggestions
	}

	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			fragment := content[start : end+1]
			if err := json.Unmarshal([]byte(fragment), &parsed); err == nil && len(parsed.Suggestions) > 0 {
				return parsed.Suggestions
			}
		}
	}

	message := strings.TrimSpace(content)
	if message == "" {
		message = "代码评审完成，无具体建议。"
	}
	return []ReviewSuggestion{{Level: "info", Message: message}}
}

func (s *AIReviewService) record(userID uint, language string, duration time.Duration, ok bool, suggestions int) {
	if s.logs == nil {
		return
	}
	entry := &model.ReviewRequestLog{
		UserID:      userID,
		Language:    language,
		Model:       s.config.Model,
		DurationMs:  duration.Milliseconds(),
		OK:          ok,
		Suggestions: suggestions,
	}
	if err := s.logs.Create(entry); err != nil {
		logger.Log.Warn("评审调用留痕失败", zap.Error(err))
	}
}
