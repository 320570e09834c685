package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/cyclelog/internal/cycle"
	"github.com/cyclelog/internal/db"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	// ErrInvalidReview 在问卷答案不合法时返回
	ErrInvalidReview = errors.New("invalid cycle review")
	// ErrNoCycleLogged 在未指定日期且没有任何经期记录时返回
	ErrNoCycleLogged = errors.New("no cycle logged")
	// ErrReviewNotFound 在指定日期没有回顾时返回
	ErrReviewNotFound = errors.New("cycle review not found")
)

var validate = validator.New()

// CycleReviewStore 是周期回顾的外部存储
type CycleReviewStore interface {
	LoadCycleReviews(ctx context.Context) ([]db.CycleReview, error)
	ReplaceCycleReviews(ctx context.Context, reviews []db.CycleReview) error
}

// LogSource 提供当前的经期日志，CycleService 实现了该接口
type LogSource interface {
	Logs() cycle.LogSet
}

// ReviewService 维护以开始日期为键的周期回顾
type ReviewService struct {
	mu        sync.Mutex
	reviews   []cycle.Review
	store     CycleReviewStore
	logs      LogSource
	persister *Persister
	logger    *zap.Logger
	now       func() time.Time
}

// NewReviewService 构造 ReviewService
func NewReviewService(store CycleReviewStore, logs LogSource, persister *Persister, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		store:     store,
		logs:      logs,
		persister: persister,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock 允许在测试中固定 RecordedAt。
func (s *ReviewService) WithClock(now func() time.Time) *ReviewService {
	if now != nil {
		s.now = now
	}
	return s
}

// Load 从存储读取回顾，失败时按空列表处理并记录错误
func (s *ReviewService) Load(ctx context.Context) {
	reviews, err := s.loadReviews(ctx)
	if err != nil {
		s.logger.Error("failed to load cycle reviews, starting empty", zap.Error(err))
		reviews = nil
	}

	s.mu.Lock()
	s.reviews = reviews
	s.mu.Unlock()
}

func (s *ReviewService) loadReviews(ctx context.Context) ([]cycle.Review, error) {
	rows, err := s.store.LoadCycleReviews(ctx)
	if err != nil {
		return nil, err
	}

	reviews := make([]cycle.Review, 0, len(rows))
	for _, row := range rows {
		review, err := reviewFromRow(row)
		if err != nil {
			return nil, err
		}
		reviews = cycle.SaveReview(reviews, review)
	}
	return reviews, nil
}

// List 返回按开始日期倒序排列的回顾副本
func (s *ReviewService) List() []cycle.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.reviews)
}

// Get 返回指定开始日期的回顾
func (s *ReviewService) Get(start cycle.Date) (cycle.Review, error) {
	review, ok := cycle.FindReview(s.List(), start)
	if !ok {
		return cycle.Review{}, ErrReviewNotFound
	}
	return review, nil
}

// SaveCycleReview 校验问卷、生成分析与建议并替换同一日期的旧回顾。
// start 为零值时使用最近一次经期开始日期。
func (s *ReviewService) SaveCycleReview(start cycle.Date, input cycle.ReviewInput) (cycle.Review, error) {
	if err := validate.Struct(input); err != nil {
		return cycle.Review{}, fmt.Errorf("%w: %v", ErrInvalidReview, err)
	}

	if start.IsZero() {
		latest, ok := s.logs.Logs().Latest()
		if !ok {
			return cycle.Review{}, ErrNoCycleLogged
		}
		start = latest
	}

	review := cycle.NewReview(start, input, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = cycle.SaveReview(s.reviews, review)
	snapshot := reviewRows(s.reviews)
	s.persister.Submit("cycle_reviews", func(ctx context.Context) error {
		return s.store.ReplaceCycleReviews(ctx, snapshot)
	})

	s.logger.Info("cycle review saved",
		zap.String("cycle_start_date", start.String()),
		zap.Int("pain_level", input.PainLevel),
		zap.String("flow", string(input.Flow)),
	)
	return review, nil
}

// ReviewDue 判断是否应提示用户填写最近一个周期的回顾
func (s *ReviewService) ReviewDue(today cycle.Date) bool {
	return cycle.IsReviewDue(s.logs.Logs(), s.List(), today)
}

func reviewFromRow(row db.CycleReview) (cycle.Review, error) {
	start, err := cycle.ParseDate(row.CycleStartDate)
	if err != nil {
		return cycle.Review{}, fmt.Errorf("parse stored cycle review: %w", err)
	}
	return cycle.Review{
		CycleStartDate: start,
		Flow:           cycle.Flow(row.Flow),
		PainLevel:      row.PainLevel,
		HasClots:       row.HasClots,
		Mood:           cycle.Mood(row.Mood),
		AnalysisText:   row.AnalysisText,
		AdviceText:     row.AdviceText,
		RecordedAt:     row.RecordedAt,
	}, nil
}

func reviewRows(reviews []cycle.Review) []db.CycleReview {
	rows := make([]db.CycleReview, 0, len(reviews))
	for _, review := range reviews {
		rows = append(rows, db.CycleReview{
			CycleStartDate: review.CycleStartDate.String(),
			Flow:           string(review.Flow),
			PainLevel:      review.PainLevel,
			HasClots:       review.HasClots,
			Mood:           string(review.Mood),
			AnalysisText:   review.AnalysisText,
			AdviceText:     review.AdviceText,
			RecordedAt:     review.RecordedAt,
		})
	}
	return rows
}
