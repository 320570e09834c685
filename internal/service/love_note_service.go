package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cyclelog/internal/db"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrEmptyNote 在短笺内容为空时返回
	ErrEmptyNote = errors.New("love note text is empty")
	// ErrNoteNotFound 在短笺不存在时返回
	ErrNoteNotFound = errors.New("love note not found")
)

// LoveNote 是写给经期中的自己的短笺
type LoveNote struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

// LoveNoteStore 是短笺的外部存储
type LoveNoteStore interface {
	LoadLoveNotes(ctx context.Context) ([]db.LoveNote, error)
	ReplaceLoveNotes(ctx context.Context, notes []db.LoveNote) error
}

// LoveNoteService 维护短笺列表，按创建顺序保存
type LoveNoteService struct {
	mu        sync.Mutex
	notes     []LoveNote
	store     LoveNoteStore
	persister *Persister
	logger    *zap.Logger
	now       func() time.Time
}

// NewLoveNoteService 构造 LoveNoteService
func NewLoveNoteService(store LoveNoteStore, persister *Persister, logger *zap.Logger) *LoveNoteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoveNoteService{
		store:     store,
		persister: persister,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock 固定 CreatedAt，测试使用
func (s *LoveNoteService) WithClock(now func() time.Time) *LoveNoteService {
	if now != nil {
		s.now = now
	}
	return s
}

// Load 从存储读取短笺，失败时按空列表处理
func (s *LoveNoteService) Load(ctx context.Context) {
	rows, err := s.store.LoadLoveNotes(ctx)
	if err != nil {
		s.logger.Error("failed to load love notes, starting empty", zap.Error(err))
		rows = nil
	}

	notes := make([]LoveNote, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, LoveNote{
			ID:        row.ID,
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
			IsRead:    row.IsRead,
		})
	}

	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()
}

// List 返回全部短笺
func (s *LoveNoteService) List() []LoveNote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notes)
}

// Available 返回尚未阅读的短笺
func (s *LoveNoteService) Available() []LoveNote {
	s.mu.Lock()
	defer s.mu.Unlock()

	unread := make([]LoveNote, 0, len(s.notes))
	for _, note := range s.notes {
		if !note.IsRead {
			unread = append(unread, note)
		}
	}
	return unread
}

// Save 新增一条短笺
func (s *LoveNoteService) Save(text string) (LoveNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return LoveNote{}, ErrEmptyNote
	}

	note := LoveNote{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append(slices.Clone(s.notes), note)
	s.persistLocked()
	s.logger.Info("love note saved", zap.String("id", note.ID))
	return note, nil
}

// Delete 删除短笺，不存在时返回 false
func (s *LoveNoteService) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return false
	}
	s.notes = slices.Delete(slices.Clone(s.notes), idx, idx+1)
	s.persistLocked()
	return true
}

// MarkRead 将短笺标记为已读
func (s *LoveNoteService) MarkRead(id string) (LoveNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return LoveNote{}, ErrNoteNotFound
	}

	notes := slices.Clone(s.notes)
	notes[idx].IsRead = true
	s.notes = notes
	s.persistLocked()
	return notes[idx], nil
}

func (s *LoveNoteService) indexLocked(id string) int {
	id = strings.TrimSpace(id)
	return slices.IndexFunc(s.notes, func(note LoveNote) bool {
		return note.ID == id
	})
}

func (s *LoveNoteService) persistLocked() {
	rows := make([]db.LoveNote, 0, len(s.notes))
	for _, note := range s.notes {
		rows = append(rows, db.LoveNote{
			ID:        note.ID,
			Text:      note.Text,
			IsRead:    note.IsRead,
			CreatedAt: note.CreatedAt,
		})
	}
	s.persister.Submit("love_notes", func(ctx context.Context) error {
		return s.store.ReplaceLoveNotes(ctx, rows)
	})
}
