package service

import (
	"codelearn_backend/internal/config"
	"codelearn_backend/internal/model"
	"codelearn_backend/pkg/logger"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseSuggestionsCleanJSON(t *testing.T) {
	content := `{"suggestions":[{"level":"warning","message":"避免使用全局变量"},{"level":"info","message":"命名清晰"}]}`
	got := parseSuggestions(content)
	if len(got) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(got))
	}
	if got[0].Level != "warning" || got[1].Level != "info" {
		t.Errorf("levels = %q, %q", got[0].Level, got[1].Level)
	}
}

func TestParseSuggestionsWrappedJSON(t *testing.T) {
	// 模型经常在 JSON 外面包一段客套话或代码围栏
	content := "好的，评审结果如下：\n```json\n{\"suggestions\":[{\"level\":\"error\",\"message\":\"缺少分号\"}]}\n```\n希望有帮助！"
	got := parseSuggestions(content)
	if len(got) != 1 {
		t.Fatalf("suggestions = %d, want 1", len(got))
	}
	if got[0].Level != "error" || got[0].Message != "缺少分号" {
		t.Errorf("got %+v", got[0])
	}
}

func TestParseSuggestionsPlainText(t *testing.T) {
	got := parseSuggestions("整体写得不错，注意缩进。")
	if len(got) != 1 {
		t.Fatalf("suggestions = %d, want 1", len(got))
	}
	if got[0].Level != "info" {
		t.Errorf("level = %q, want info", got[0].Level)
	}
	if got[0].Message != "整体写得不错，注意缩进。" {
		t.Errorf("message = %q", got[0].Message)
	}
}

func TestParseSuggestionsEmpty(t *testing.T) {
	got := parseSuggestions("   ")
	if len(got) != 1 || got[0].Level != "info" || got[0].Message == "" {
		t.Fatalf("got %+v, want single non-empty info suggestion", got)
	}
}

type fakeReviewLogStore struct {
	entries []*model.ReviewRequestLog
}

func (f *fakeReviewLogStore) Create(log *model.ReviewRequestLog) error {
	f.entries = append(f.entries, log)
	return nil
}

func (f *fakeReviewLogStore) ListByUser(userID uint, limit int) ([]model.ReviewRequestLog, error) {
	var out []model.ReviewRequestLog
	for _, entry := range f.entries {
		if entry.UserID == userID && len(out) < limit {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func TestReviewEndToEnd(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"suggestions\":[{\"level\":\"info\",\"message\":\"ok\"}]}"}}]}`))
	}))
	defer provider.Close()

	logs := &fakeReviewLogStore{}
	svc := NewAIReviewService(config.AIConfig{
		BaseURL: provider.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	}, logs)

	result, err := svc.Review(context.Background(), 3, "print('hi')", "python", "")
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0].Message != "ok" {
		t.Fatalf("suggestions = %+v", result.Suggestions)
	}
	if result.Meta.Model != "test-model" {
		t.Errorf("meta model = %q", result.Meta.Model)
	}
	if result.Meta.DurationMs < 0 {
		t.Errorf("duration = %d", result.Meta.DurationMs)
	}

	if len(logs.entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(logs.entries))
	}
	entry := logs.entries[0]
	if entry.UserID != 3 || entry.Language != "python" || !entry.OK || entry.Suggestions != 1 {
		t.Errorf("log entry = %+v", entry)
	}
}

func TestMissingAPIKeyWarnsAtStartup(t *testing.T) {
	core, recorded := observer.New(zap.WarnLevel)
	old := logger.Log
	logger.Log = zap.New(core)
	defer func() { logger.Log = old }()

	NewAIReviewService(config.AIConfig{BaseURL: "http://localhost", Model: "m"}, nil)

	warned := false
	for _, entry := range recorded.All() {
		if strings.Contains(entry.Message, "api_key") {
			warned = true
		}
	}
	if !warned {
		t.Fatal("expected a warning when api_key is empty")
	}

	// 配了 key 不告警
	recorded.TakeAll()
	NewAIReviewService(config.AIConfig{BaseURL: "http://localhost", APIKey: "k", Model: "m"}, nil)
	if len(recorded.All()) != 0 {
		t.Fatalf("unexpected warnings: %+v", recorded.All())
	}
}

func TestReviewProviderError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusBadGateway)
	}))
	defer provider.Close()

	logs := &fakeReviewLogStore{}
	svc := NewAIReviewService(config.AIConfig{BaseURL: provider.URL, Model: "m"}, logs)

	if _, err := svc.Review(context.Background(), 0, "x", "css", ""); err == nil {
		t.Fatal("expected error on provider failure")
	}
	if len(logs.entries) != 1 || logs.entries[0].OK {
		t.Errorf("failure should be logged with OK=false, entries = %+v", logs.entries)
	}
}
