package controller

import (
	"bytes"
	"codelearn_backend/internal/catalog"
	"codelearn_backend/internal/model"
	"codelearn_backend/internal/service"
	"codelearn_backend/internal/util"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type memStateStore struct {
	cursors map[string]int
}

func (s *memStateStore) key(userID uint, language, level string) string {
	return fmt.Sprintf("%d|%s|%s", userID, language, level)
}

func (s *memStateStore) GetCurrentIndex(userID uint, language, level string) (int, bool, error) {
	index, ok := s.cursors[s.key(userID, language, level)]
	return index, ok, nil
}

func (s *memStateStore) SaveCurrentIndex(userID uint, language, level string, index int) error {
	s.cursors[s.key(userID, language, level)] = index
	return nil
}

type memProgressStore struct {
	records map[string]*model.ExerciseProgress
	state   *memStateStore
}

func (s *memProgressStore) key(userID uint, language, levelKey string) string {
	return fmt.Sprintf("%d|%s|%s", userID, language, levelKey)
}

func (s *memProgressStore) Get(userID uint, language, levelKey string) (*model.ExerciseProgress, error) {
	return s.records[s.key(userID, language, levelKey)], nil
}

func (s *memProgressStore) ListByLevel(userID uint, language, level string) ([]model.ExerciseProgress, error) {
	prefix := fmt.Sprintf("%d|%s|%s-", userID, language, level)
	var out []model.ExerciseProgress
	for key, rec := range s.records {
		if strings.HasPrefix(key, prefix) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (s *memProgressStore) upsert(userID uint, language, levelKey, code string) *model.ExerciseProgress {
	key := s.key(userID, language, levelKey)
	rec, ok := s.records[key]
	if !ok {
		rec = &model.ExerciseProgress{UserID: userID, Language: language, LevelKey: levelKey}
		s.records[key] = rec
	}
	rec.Code = code
	return rec
}

func (s *memProgressStore) SaveDraft(userID uint, language, levelKey, code string) error {
	s.upsert(userID, language, levelKey, code)
	return nil
}

func (s *memProgressStore) RecordFailure(userID uint, language, levelKey, code string) error {
	return s.SaveDraft(userID, language, levelKey, code)
}

func (s *memProgressStore) CompleteAndAdvance(userID uint, language, level string, index int, code string, points, advanceTo int) (bool, error) {
	rec := s.upsert(userID, language, catalog.LevelKey(level, index), code)
	awarded := !rec.IsCompleted
	rec.IsCompleted = true
	if awarded {
		rec.Points = points
	}
	return awarded, s.state.SaveCurrentIndex(userID, language, level, advanceTo)
}

func (s *memProgressStore) CountCompleted(userID uint, language, level string) (int64, error) {
	records, _ := s.ListByLevel(userID, language, level)
	var count int64
	for _, rec := range records {
		if rec.IsCompleted {
			count++
		}
	}
	return count, nil
}

type memTemplateStore struct{}

func (memTemplateStore) ListByLevel(language, level string) ([]model.FeedbackTemplate, error) {
	return nil, nil
}

func (memTemplateStore) ListByCategory(language, level, category string) ([]model.FeedbackTemplate, error) {
	return []model.FeedbackTemplate{
		{Language: language, Level: level, Category: category, Message: "check your syntax"},
	}, nil
}

type memLeaderboardCache struct {
	invalidations int
}

func (c *memLeaderboardCache) InvalidateLeaderboard(ctx context.Context) {
	c.invalidations++
}

func newExerciseRouter(userID uint) (*gin.Engine, *memProgressStore, *memLeaderboardCache) {
	gin.SetMode(gin.TestMode)

	state := &memStateStore{cursors: map[string]int{}}
	progress := &memProgressStore{records: map[string]*model.ExerciseProgress{}, state: state}
	leaderboard := &memLeaderboardCache{}

	c := NewExerciseController(
		service.NewProgressionService(progress, state),
		service.NewFeedbackService(memTemplateStore{}),
		service.NewAutosaveService(progress, 10*time.Millisecond),
		leaderboard,
	)

	router := gin.New()
	if userID != 0 {
		router.Use(func(ctx *gin.Context) {
			ctx.Set("user", &util.Claims{UserID: userID})
			ctx.Next()
		})
	}
	router.GET("/api/exercises/languages", c.Languages)
	router.GET("/api/feedback/:language/:level", c.FeedbackTemplates)
	router.GET("/api/exercises/:language/:level", c.ListLevel)
	router.GET("/api/exercises/:language/:level/resume", c.Resume)
	router.POST("/api/exercises/:language/:level/:index/submit", c.Submit)
	router.POST("/api/exercises/:language/:level/navigate", c.Navigate)
	router.PUT("/api/exercises/:language/:level/:index/draft", c.SaveDraft)
	return router, progress, leaderboard
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, &env
}

func TestLanguagesEndpoint(t *testing.T) {
	router, _, _ := newExerciseRouter(1)
	w, env := doJSON(t, router, http.MethodGet, "/api/exercises/languages", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var data struct {
		Languages []string `json:"languages"`
		Levels    []string `json:"levels"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Languages) != 5 || len(data.Levels) != 3 {
		t.Fatalf("got %d languages, %d levels", len(data.Languages), len(data.Levels))
	}
}

func TestSubmitPassedResponse(t *testing.T) {
	router, _, _ := newExerciseRouter(7)
	set, _ := catalog.Lookup("python", "beginner")

	w, env := doJSON(t, router, http.MethodPost, "/api/exercises/python/beginner/0/submit",
		gin.H{"code": set.Exercises[0].Solution})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var result struct {
		Passed        bool `json:"passed"`
		AwardedPoints int  `json:"awardedPoints"`
		NextIndex     int  `json:"nextIndex"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !result.Passed {
		t.Fatal("expected passed")
	}
	if result.AwardedPoints != set.Exercises[0].Points {
		t.Fatalf("awardedPoints = %d, want %d", result.AwardedPoints, set.Exercises[0].Points)
	}
	if result.NextIndex != 1 {
		t.Fatalf("nextIndex = %d, want 1", result.NextIndex)
	}
}

func TestSubmitFailedIncludesFeedback(t *testing.T) {
	router, _, _ := newExerciseRouter(7)
	w, env := doJSON(t, router, http.MethodPost, "/api/exercises/python/beginner/0/submit",
		gin.H{"code": "x = 1"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var result struct {
		Passed   bool   `json:"passed"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if result.Passed {
		t.Fatal("expected failure")
	}
	if result.Feedback == "" {
		t.Fatal("expected feedback message on failure")
	}
}

func TestSubmitInvalidatesLeaderboardOnAward(t *testing.T) {
	router, _, leaderboard := newExerciseRouter(7)
	set, _ := catalog.Lookup("python", "beginner")

	// 未通过的提交不动缓存
	doJSON(t, router, http.MethodPost, "/api/exercises/python/beginner/0/submit",
		gin.H{"code": "x = 1"})
	if leaderboard.invalidations != 0 {
		t.Fatalf("invalidations after fail = %d, want 0", leaderboard.invalidations)
	}

	doJSON(t, router, http.MethodPost, "/api/exercises/python/beginner/0/submit",
		gin.H{"code": set.Exercises[0].Solution})
	if leaderboard.invalidations != 1 {
		t.Fatalf("invalidations after award = %d, want 1", leaderboard.invalidations)
	}

	// 重复通过不再发积分，也不再失效缓存
	doJSON(t, router, http.MethodPost, "/api/exercises/python/beginner/0/submit",
		gin.H{"code": set.Exercises[0].Solution})
	if leaderboard.invalidations != 1 {
		t.Fatalf("invalidations after repeat = %d, want 1", leaderboard.invalidations)
	}
}

func TestSubmitLockedReturns403(t *testing.T) {
	router, _, _ := newExerciseRouter(7)
	w, env := doJSON(t, router, http.MethodPost, "/api/exercises/python/beginner/2/submit",
		gin.H{"code": "print('hi')"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if env.Message != "locked" {
		t.Fatalf("message = %q, want \"locked\"", env.Message)
	}
}

func TestSubmitEmptyCodeReturns400(t *testing.T) {
	router, _, _ := newExerciseRouter(7)
	w, _ := doJSON(t, router, http.MethodPost, "/api/exercises/python/beginner/0/submit",
		gin.H{"code": "   \n\t"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSubmitUnknownLanguageReturns404(t *testing.T) {
	router, _, _ := newExerciseRouter(7)
	w, _ := doJSON(t, router, http.MethodPost, "/api/exercises/rust/beginner/0/submit",
		gin.H{"code": "fn main() {}"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSubmitWithoutClaimsReturns401(t *testing.T) {
	router, _, _ := newExerciseRouter(0)
	w, _ := doJSON(t, router, http.MethodPost, "/api/exercises/python/beginner/0/submit",
		gin.H{"code": "print('hi')"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestResumeAfterSubmit(t *testing.T) {
	router, _, _ := newExerciseRouter(7)
	set, _ := catalog.Lookup("python", "beginner")

	_, env := doJSON(t, router, http.MethodGet, "/api/exercises/python/beginner/resume", nil)
	var resume struct {
		CurrentIndex int `json:"currentIndex"`
	}
	json.Unmarshal(env.Data, &resume)
	if resume.CurrentIndex != 0 {
		t.Fatalf("fresh currentIndex = %d, want 0", resume.CurrentIndex)
	}

	doJSON(t, router, http.MethodPost, "/api/exercises/python/beginner/0/submit",
		gin.H{"code": set.Exercises[0].Solution})

	_, env = doJSON(t, router, http.MethodGet, "/api/exercises/python/beginner/resume", nil)
	json.Unmarshal(env.Data, &resume)
	if resume.CurrentIndex != 1 {
		t.Fatalf("currentIndex after pass = %d, want 1", resume.CurrentIndex)
	}
}

func TestNavigateLockedTarget(t *testing.T) {
	router, _, _ := newExerciseRouter(7)
	target := 3
	w, env := doJSON(t, router, http.MethodPost, "/api/exercises/python/beginner/navigate",
		gin.H{"index": target})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if env.Message != "locked" {
		t.Fatalf("message = %q, want \"locked\"", env.Message)
	}
}

func TestNavigateBackToFirst(t *testing.T) {
	router, _, _ := newExerciseRouter(7)
	w, _ := doJSON(t, router, http.MethodPost, "/api/exercises/python/beginner/navigate",
		gin.H{"index": 0})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestSaveDraftOutOfRangeReturns404(t *testing.T) {
	router, _, _ := newExerciseRouter(7)
	w, _ := doJSON(t, router, http.MethodPut, "/api/exercises/python/beginner/42/draft",
		gin.H{"code": "print('wip')"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSaveDraftAccepted(t *testing.T) {
	router, progress, _ := newExerciseRouter(7)
	w, env := doJSON(t, router, http.MethodPut, "/api/exercises/python/beginner/0/draft",
		gin.H{"code": "print('wip')"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var data struct {
		Saved bool `json:"saved"`
	}
	json.Unmarshal(env.Data, &data)
	if !data.Saved {
		t.Fatal("expected saved=true")
	}

	// 落盘是去抖的，等一个写入周期
	time.Sleep(50 * time.Millisecond)
	rec, _ := progress.Get(7, "python", "beginner-0")
	if rec == nil || rec.Code != "print('wip')" {
		t.Fatalf("draft not persisted: %+v", rec)
	}
}

func TestListLevelView(t *testing.T) {
	router, _, _ := newExerciseRouter(7)
	w, env := doJSON(t, router, http.MethodGet, "/api/exercises/html/beginner", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var view struct {
		Total     int `json:"total"`
		Exercises []struct {
			Unlocked  bool `json:"unlocked"`
			Completed bool `json:"completed"`
		} `json:"exercises"`
	}
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if view.Total == 0 || len(view.Exercises) != view.Total {
		t.Fatalf("bad view: total=%d exercises=%d", view.Total, len(view.Exercises))
	}
	if !view.Exercises[0].Unlocked {
		t.Fatal("first exercise must be unlocked")
	}
	if len(view.Exercises) > 1 && view.Exercises[1].Unlocked {
		t.Fatal("second exercise must start locked")
	}
}
