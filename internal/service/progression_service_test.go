package service

import (
	"codelearn_backend/internal/catalog"
	"codelearn_backend/internal/model"
	"codelearn_backend/internal/util"
	"errors"
	"testing"
)

type fakeProgressStore struct {
	records map[string]*model.ExerciseProgress // key: language|levelKey
	points  int
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: map[string]*model.ExerciseProgress{}}
}

func (f *fakeProgressStore) key(language, levelKey string) string {
	return language + "|" + levelKey
}

func (f *fakeProgressStore) Get(userID uint, language, levelKey string) (*model.ExerciseProgress, error) {
	return f.records[f.key(language, levelKey)], nil
}

func (f *fakeProgressStore) ListByLevel(userID uint, language, level string) ([]model.ExerciseProgress, error) {
	var out []model.ExerciseProgress
	for _, rec := range f.records {
		if rec.Language == language && len(rec.LevelKey) > len(level) && rec.LevelKey[:len(level)] == level {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeProgressStore) SaveDraft(userID uint, language, levelKey, code string) error {
	k := f.key(language, levelKey)
	if rec, ok := f.records[k]; ok {
		rec.Code = code
		return nil
	}
	f.records[k] = &model.ExerciseProgress{
		UserID: userID, Language: language, LevelKey: levelKey, Code: code,
	}
	return nil
}

func (f *fakeProgressStore) RecordFailure(userID uint, language, levelKey, code string) error {
	return f.SaveDraft(userID, language, levelKey, code)
}

func (f *fakeProgressStore) CompleteAndAdvance(userID uint, language, level string, index int, code string, points, advanceTo int) (bool, error) {
	levelKey := catalog.LevelKey(level, index)
	k := f.key(language, levelKey)
	awarded := false
	rec, ok := f.records[k]
	if !ok {
		rec = &model.ExerciseProgress{UserID: userID, Language: language, LevelKey: levelKey}
		f.records[k] = rec
	}
	if !rec.IsCompleted {
		awarded = true
		rec.IsCompleted = true
		rec.Points = points
		f.points += points
	}
	rec.Code = code
	f.state().index[language+"|"+level] = advanceTo
	return awarded, nil
}

func (f *fakeProgressStore) CountCompleted(userID uint, language, level string) (int64, error) {
	records, _ := f.ListByLevel(userID, language, level)
	var n int64
	for _, r := range records {
		if r.IsCompleted {
			n++
		}
	}
	return n, nil
}

// 提交通过后由同一事务更新游标，fake 里用共享 state 模拟
var sharedState *fakeStateStore

func (f *fakeProgressStore) state() *fakeStateStore {
	return sharedState
}

type fakeStateStore struct {
	index map[string]int
	err   error
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{index: map[string]int{}}
}

func (f *fakeStateStore) GetCurrentIndex(userID uint, language, level string) (int, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	idx, ok := f.index[language+"|"+level]
	return idx, ok, nil
}

func (f *fakeStateStore) SaveCurrentIndex(userID uint, language, level string, index int) error {
	if f.err != nil {
		return f.err
	}
	f.index[language+"|"+level] = index
	return nil
}

func newTestService() (*ProgressionService, *fakeProgressStore, *fakeStateStore) {
	progress := newFakeProgressStore()
	state := newFakeStateStore()
	sharedState = state
	return NewProgressionService(progress, state), progress, state
}

const testUser uint = 7

func TestSubmitPassAdvancesAndAwards(t *testing.T) {
	svc, progress, state := newTestService()

	set, _ := catalog.Lookup("python", catalog.LevelBeginner)
	result, err := svc.Submit(testUser, "python", catalog.LevelBeginner, 0, set.Exercises[0].Solution)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !result.Passed {
		t.Fatal("expected pass")
	}
	if result.AwardedPoints != set.Exercises[0].Points {
		t.Errorf("awarded = %d, want %d", result.AwardedPoints, set.Exercises[0].Points)
	}
	if result.NextIndex != 1 {
		t.Errorf("next index = %d, want 1", result.NextIndex)
	}
	if progress.points != set.Exercises[0].Points {
		t.Errorf("user points = %d, want %d", progress.points, set.Exercises[0].Points)
	}
	if idx := state.index["python|beginner"]; idx != 1 {
		t.Errorf("cursor = %d, want 1", idx)
	}
}

func TestSubmitFailDoesNotAdvance(t *testing.T) {
	svc, progress, state := newTestService()

	result, err := svc.Submit(testUser, "python", catalog.LevelBeginner, 0, "this is not python")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Passed {
		t.Fatal("expected failure")
	}
	if result.AwardedPoints != 0 {
		t.Errorf("awarded = %d, want 0", result.AwardedPoints)
	}
	if progress.points != 0 {
		t.Errorf("user points = %d, want 0", progress.points)
	}
	if _, ok := state.index["python|beginner"]; ok {
		t.Error("cursor should not move on failure")
	}
	// 未通过的代码仍然保留
	rec, _ := progress.Get(testUser, "python", "beginner-0")
	if rec == nil || rec.Code != "this is not python" {
		t.Error("failed submission code should be recorded")
	}
}

func TestSubmitRepeatNoDoubleAward(t *testing.T) {
	svc, progress, _ := newTestService()

	set, _ := catalog.Lookup("python", catalog.LevelBeginner)
	solution := set.Exercises[0].Solution

	first, _ := svc.Submit(testUser, "python", catalog.LevelBeginner, 0, solution)
	second, err := svc.Submit(testUser, "python", catalog.LevelBeginner, 0, solution)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !second.Passed {
		t.Fatal("resubmission of correct answer should pass")
	}
	if second.AwardedPoints != 0 {
		t.Errorf("second award = %d, want 0", second.AwardedPoints)
	}
	if progress.points != first.AwardedPoints {
		t.Errorf("points = %d, want %d", progress.points, first.AwardedPoints)
	}
}

func TestSubmitLockedExercise(t *testing.T) {
	svc, _, _ := newTestService()

	set, _ := catalog.Lookup("python", catalog.LevelBeginner)
	_, err := svc.Submit(testUser, "python", catalog.LevelBeginner, 2, set.Exercises[2].Solution)
	if !errors.Is(err, util.ErrExerciseLocked) {
		t.Fatalf("err = %v, want ErrExerciseLocked", err)
	}
}

func TestSubmitEmptyCode(t *testing.T) {
	svc, _, _ := newTestService()

	for _, code := range []string{"", "   ", "\n\t"} {
		_, err := svc.Submit(testUser, "python", catalog.LevelBeginner, 0, code)
		if !errors.Is(err, util.ErrEmptySubmission) {
			t.Errorf("Submit(%q): err = %v, want ErrEmptySubmission", code, err)
		}
	}
}

func TestSubmitUnknownTargets(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Submit(testUser, "rust", catalog.LevelBeginner, 0, "x"); !errors.Is(err, util.ErrLanguageNotFound) {
		t.Errorf("unknown language: err = %v", err)
	}
	if _, err := svc.Submit(testUser, "python", "expert", 0, "x"); !errors.Is(err, util.ErrLevelNotFound) {
		t.Errorf("unknown level: err = %v", err)
	}
	if _, err := svc.Submit(testUser, "python", catalog.LevelBeginner, 99, "x"); !errors.Is(err, util.ErrExerciseNotFound) {
		t.Errorf("out of range index: err = %v", err)
	}
}

// 末题通过后游标停在末题，不越界
func TestSubmitLastExerciseCursorStays(t *testing.T) {
	svc, _, state := newTestService()

	set, _ := catalog.Lookup("python", catalog.LevelBeginner)
	last := set.Len() - 1
	for i := 0; i <= last; i++ {
		result, err := svc.Submit(testUser, "python", catalog.LevelBeginner, i, set.Exercises[i].Solution)
		if err != nil {
			t.Fatalf("Submit(%d): %v", i, err)
		}
		if !result.Passed {
			t.Fatalf("Submit(%d): expected pass", i)
		}
		if i == last {
			if result.NextIndex != last {
				t.Errorf("final next index = %d, want %d", result.NextIndex, last)
			}
			if !result.LevelCompleted {
				t.Error("expected level completed")
			}
		}
	}
	if idx := state.index["python|beginner"]; idx != last {
		t.Errorf("cursor = %d, want %d", idx, last)
	}
}

func TestNavigate(t *testing.T) {
	svc, _, state := newTestService()

	set, _ := catalog.Lookup("python", catalog.LevelBeginner)
	if _, err := svc.Submit(testUser, "python", catalog.LevelBeginner, 0, set.Exercises[0].Solution); err != nil {
		t.Fatal(err)
	}

	// 已完成第 0 题，第 1 题解锁，可以来回跳
	if err := svc.Navigate(testUser, "python", catalog.LevelBeginner, 0); err != nil {
		t.Fatalf("Navigate back: %v", err)
	}
	if idx := state.index["python|beginner"]; idx != 0 {
		t.Errorf("cursor = %d, want 0", idx)
	}
	if err := svc.Navigate(testUser, "python", catalog.LevelBeginner, 1); err != nil {
		t.Fatalf("Navigate forward: %v", err)
	}

	// 第 2 题仍然锁着
	if err := svc.Navigate(testUser, "python", catalog.LevelBeginner, 2); !errors.Is(err, util.ErrExerciseLocked) {
		t.Errorf("locked navigate: err = %v, want ErrExerciseLocked", err)
	}
	if err := svc.Navigate(testUser, "python", catalog.LevelBeginner, -1); !errors.Is(err, util.ErrExerciseNotFound) {
		t.Errorf("negative navigate: err = %v", err)
	}
}

func TestResume(t *testing.T) {
	svc, _, state := newTestService()

	// 无任何记录：落在第 0 题
	idx, err := svc.Resume(testUser, "python", catalog.LevelBeginner)
	if err != nil || idx != 0 {
		t.Fatalf("Resume fresh = (%d, %v), want (0, nil)", idx, err)
	}

	set, _ := catalog.Lookup("python", catalog.LevelBeginner)
	if _, err := svc.Submit(testUser, "python", catalog.LevelBeginner, 0, set.Exercises[0].Solution); err != nil {
		t.Fatal(err)
	}

	idx, err = svc.Resume(testUser, "python", catalog.LevelBeginner)
	if err != nil || idx != 1 {
		t.Fatalf("Resume after first pass = (%d, %v), want (1, nil)", idx, err)
	}

	// 存储里出现越界游标：截断回末题
	state.index["python|beginner"] = 99
	idx, _ = svc.Resume(testUser, "python", catalog.LevelBeginner)
	if idx != 1 {
		t.Errorf("Resume clamps out-of-range cursor to unlock frontier, got %d", idx)
	}

	state.index["python|beginner"] = -3
	idx, _ = svc.Resume(testUser, "python", catalog.LevelBeginner)
	if idx != 0 {
		t.Errorf("Resume clamps negative cursor to 0, got %d", idx)
	}
}

func TestResumeNoCursorFirstIncomplete(t *testing.T) {
	svc, _, state := newTestService()

	set, _ := catalog.Lookup("python", catalog.LevelBeginner)
	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(testUser, "python", catalog.LevelBeginner, i, set.Exercises[i].Solution); err != nil {
			t.Fatal(err)
		}
	}
	// 丢掉游标，模拟换端登录后只有进度没有游标
	delete(state.index, "python|beginner")

	idx, err := svc.Resume(testUser, "python", catalog.LevelBeginner)
	if err != nil || idx != 2 {
		t.Fatalf("Resume = (%d, %v), want (2, nil)", idx, err)
	}
}

func TestListLevelView(t *testing.T) {
	svc, _, _ := newTestService()

	set, _ := catalog.Lookup("html", catalog.LevelBeginner)
	if _, err := svc.Submit(testUser, "html", catalog.LevelBeginner, 0, set.Exercises[0].Solution); err != nil {
		t.Fatal(err)
	}

	view, err := svc.ListLevel(testUser, "html", catalog.LevelBeginner)
	if err != nil {
		t.Fatalf("ListLevel: %v", err)
	}
	if view.Total != set.Len() || len(view.Exercises) != set.Len() {
		t.Fatalf("total = %d, exercises = %d", view.Total, len(view.Exercises))
	}
	if !view.Exercises[0].Completed || !view.Exercises[0].Unlocked {
		t.Error("exercise 0 should be completed and unlocked")
	}
	if !view.Exercises[1].Unlocked {
		t.Error("exercise 1 should be unlocked after 0 completes")
	}
	if view.Exercises[2].Unlocked {
		t.Error("exercise 2 should stay locked")
	}
	if view.CurrentIndex != 1 {
		t.Errorf("current index = %d, want 1", view.CurrentIndex)
	}
}

func TestSaveDraft(t *testing.T) {
	svc, progress, _ := newTestService()

	if err := svc.SaveDraft(testUser, "css", catalog.LevelBeginner, 0, "h1 { color: purple; }"); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	rec, _ := progress.Get(testUser, "css", "beginner-0")
	if rec == nil || rec.Code != "h1 { color: purple; }" {
		t.Fatal("draft not stored")
	}
	if rec.IsCompleted {
		t.Error("draft must not mark exercise completed")
	}

	if err := svc.SaveDraft(testUser, "css", catalog.LevelBeginner, 99, "x"); !errors.Is(err, util.ErrExerciseNotFound) {
		t.Errorf("out of range draft: err = %v", err)
	}
}
