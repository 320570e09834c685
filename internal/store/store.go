package store

import (
	"context"
	"fmt"

	"github.com/cyclelog/internal/db"
	"gorm.io/gorm"
)

// SQLStore 以整表替换的方式持久化周期日志、回顾与短笺。
// 数据量很小（单用户，每年十几条），整表重写比逐行比对更简单可靠。
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore 构造 SQLStore
func NewSQLStore(gdb *gorm.DB) *SQLStore {
	return &SQLStore{db: gdb}
}

// LoadCycleLogs 返回按日期倒序排列的原始日期字符串
func (s *SQLStore) LoadCycleLogs(ctx context.Context) ([]string, error) {
	var rows []db.CycleLog
	if err := s.db.WithContext(ctx).Order("start_date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load cycle logs: %w", err)
	}

	dates := make([]string, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.StartDate)
	}
	return dates, nil
}

// ReplaceCycleLogs 用 dates 覆盖全部日志
func (s *SQLStore) ReplaceCycleLogs(ctx context.Context, dates []string) error {
	rows := make([]db.CycleLog, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, db.CycleLog{StartDate: date})
	}

	if err := replaceAll(s.db.WithContext(ctx), &db.CycleLog{}, rows); err != nil {
		return fmt.Errorf("replace cycle logs: %w", err)
	}
	return nil
}

// LoadCycleReviews 返回按开始日期倒序排列的回顾
func (s *SQLStore) LoadCycleReviews(ctx context.Context) ([]db.CycleReview, error) {
	var rows []db.CycleReview
	if err := s.db.WithContext(ctx).Order("cycle_start_date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load cycle reviews: %w", err)
	}
	return rows, nil
}

// ReplaceCycleReviews 用 reviews 覆盖全部回顾
func (s *SQLStore) ReplaceCycleReviews(ctx context.Context, reviews []db.CycleReview) error {
	rows := make([]db.CycleReview, len(reviews))
	copy(rows, reviews)
	for i := range rows {
		rows[i].ID = 0
	}

	if err := replaceAll(s.db.WithContext(ctx), &db.CycleReview{}, rows); err != nil {
		return fmt.Errorf("replace cycle reviews: %w", err)
	}
	return nil
}

// LoadLoveNotes 按创建时间升序返回短笺
func (s *SQLStore) LoadLoveNotes(ctx context.Context) ([]db.LoveNote, error) {
	var rows []db.LoveNote
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load love notes: %w", err)
	}
	return rows, nil
}

// ReplaceLoveNotes 用 notes 覆盖全部短笺
func (s *SQLStore) ReplaceLoveNotes(ctx context.Context, notes []db.LoveNote) error {
	if err := replaceAll(s.db.WithContext(ctx), &db.LoveNote{}, notes); err != nil {
		return fmt.Errorf("replace love notes: %w", err)
	}
	return nil
}

func replaceAll[T any](gdb *gorm.DB, model *T, rows []T) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
