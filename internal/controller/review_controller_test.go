package controller

import (
	"bytes"
	"codelearn_backend/internal/config"
	"codelearn_backend/internal/middleware"
	"codelearn_backend/internal/model"
	"codelearn_backend/internal/service"
	"codelearn_backend/internal/util"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type memReviewLogStore struct {
	entries []*model.ReviewRequestLog
}

func (s *memReviewLogStore) Create(log *model.ReviewRequestLog) error {
	s.entries = append(s.entries, log)
	return nil
}

func (s *memReviewLogStore) ListByUser(userID uint, limit int) ([]model.ReviewRequestLog, error) {
	var out []model.ReviewRequestLog
	for _, entry := range s.entries {
		if entry.UserID == userID && len(out) < limit {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func newReviewRouter(upstream string) (*gin.Engine, *memReviewLogStore) {
	gin.SetMode(gin.TestMode)
	logs := &memReviewLogStore{}
	svc := service.NewAIReviewService(config.AIConfig{
		BaseURL: upstream,
		APIKey:  "test-key",
		Model:   "test-model",
	}, logs)

	router := gin.New()
	router.POST("/api/ai-review", NewReviewController(svc, logs).Review)
	return router, logs
}

func postReview(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/ai-review", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReviewMissingFields(t *testing.T) {
	router, _ := newReviewRouter("http://unused")

	cases := []string{
		`{}`,
		`{"code": "print(1)"}`,
		`{"language": "python"}`,
		`{"code": "", "language": "python"}`,
		`{"code": "print(1)", "language": ""}`,
		`not json`,
	}
	for _, body := range cases {
		w := postReview(router, body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["error"] != "Missing required fields: code, language" {
			t.Fatalf("error = %q", resp["error"])
		}
	}
}

func TestReviewSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		content := `{"suggestions":[{"level":"warning","message":"use const"}]}`
		json.NewEncoder(w).Encode(gin.H{
			"choices": []gin.H{{"message": gin.H{"role": "assistant", "content": content}}},
		})
	}))
	defer upstream.Close()

	router, logs := newReviewRouter(upstream.URL)
	w := postReview(router, `{"code": "var x = 1", "language": "javascript"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var result service.ReviewResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0].Level != "warning" {
		t.Fatalf("suggestions = %+v", result.Suggestions)
	}
	if result.Meta.Model != "test-model" {
		t.Fatalf("meta.model = %q", result.Meta.Model)
	}
	if len(logs.entries) != 1 || !logs.entries[0].OK {
		t.Fatalf("log entries = %+v", logs.entries)
	}
}

func TestUserLogsAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logs := &memReviewLogStore{entries: []*model.ReviewRequestLog{
		{UserID: 3, Language: "python", OK: true, Suggestions: 2},
		{UserID: 5, Language: "css", OK: true, Suggestions: 1},
	}}
	c := NewReviewController(nil, logs)

	newRouter := func(role model.UserRole) *gin.Engine {
		router := gin.New()
		router.Use(func(ctx *gin.Context) {
			ctx.Set("user", &util.Claims{UserID: 1, Role: role})
			ctx.Next()
		})
		router.GET("/api/admin/users/:id/review-logs",
			middleware.RoleMiddleware(model.Admin), c.UserLogs)
		return router
	}

	// 学生被拒
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users/3/review-logs", nil)
	w := httptest.NewRecorder()
	newRouter(model.Student).ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("student status = %d, want 403", w.Code)
	}

	// 管理员可见，且只看目标用户的记录
	req = httptest.NewRequest(http.MethodGet, "/api/admin/users/3/review-logs", nil)
	w = httptest.NewRecorder()
	newRouter(model.Admin).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("admin status = %d, body %s", w.Code, w.Body.String())
	}
	var env struct {
		Data []model.ReviewRequestLog `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 1 || env.Data[0].Language != "python" {
		t.Fatalf("data = %+v", env.Data)
	}
}

func TestReviewUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer upstream.Close()

	router, logs := newReviewRouter(upstream.URL)
	w := postReview(router, `{"code": "print(1)", "language": "python"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "AI review failed" || resp["details"] == "" {
		t.Fatalf("resp = %v", resp)
	}
	if len(logs.entries) != 1 || logs.entries[0].OK {
		t.Fatalf("log entries = %+v", logs.entries)
	}
}
