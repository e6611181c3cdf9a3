package service

import (
	"codelearn_backend/internal/catalog"
	"codelearn_backend/pkg/logger"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AutosaveService 把高频的草稿写入合并成低频落库：
// 同一 (用户, 语言, 练习) 的连续写入只保留最后一份，
// 静默 interval 后才真正写库。Flush/Close 时立即落盘。
type AutosaveService struct {
	progress ProgressStore
	interval time.Duration

	mu      sync.Mutex
	pending map[string]*pendingDraft
	closed  bool
}

type pendingDraft struct {
	userID   uint
	language string
	levelKey string
	code     string
	timer    *time.Timer
}

func NewAutosaveService(progress ProgressStore, interval time.Duration) *AutosaveService {
	if interval <= 0 {
		interval = time.Second
	}
	return &AutosaveService{
		progress: progress,
		interval: interval,
		pending:  map[string]*pendingDraft{},
	}
}

func draftKey(userID uint, language, levelKey string) string {
	return fmt.Sprintf("%d:%s:%s", userID, language, levelKey)
}

// Save 记下最新草稿并重置静默计时器
func (s *AutosaveService) Save(userID uint, language, level string, index int, code string) {
	levelKey := catalog.LevelKey(level, index)
	key := draftKey(userID, language, levelKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if draft, ok := s.pending[key]; ok {
		draft.code = code
		draft.timer.Reset(s.interval)
		return
	}

	draft := &pendingDraft{
		userID:   userID,
		language: language,
		levelKey: levelKey,
		code:     code,
	}
	draft.timer = time.AfterFunc(s.interval, func() {
		s.flushKey(key)
	})
	s.pending[key] = draft
}

func (s *AutosaveService) flushKey(key string) {
	s.mu.Lock()
	draft, ok := s.pending[key]
	if ok {
		delete(s.pending, key)
	}
	s.mu.Unlock()
	if !ok {
		return
	}
	s.write(draft)
}

func (s *AutosaveService) write(draft *pendingDraft) {
	if err := s.progress.SaveDraft(draft.userID, draft.language, draft.levelKey, draft.code); err != nil {
		logger.Log.Warn("草稿落库失败",
			zap.Uint("user_id", draft.userID),
			zap.String("level_key", draft.levelKey),
			zap.Error(err))
	}
}

// Flush 立即写出全部待落盘草稿
func (s *AutosaveService) Flush() {
	s.mu.Lock()
	drafts := make([]*pendingDraft, 0, len(s.pending))
	for key, draft := range s.pending {
		draft.timer.Stop()
		drafts = append(drafts, draft)
		delete(s.pending, key)
	}
	s.mu.Unlock()

	for _, draft := range drafts {
		s.write(draft)
	}
}

// Close 停止接收新草稿并写出存量，优雅退出时调用
func (s *AutosaveService) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.Flush()
}
