package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/cyclelog/internal/cycle"
	"go.uber.org/zap"
)

// CycleLogStore 是周期日志的外部存储，只需要整体读取与整体替换
type CycleLogStore interface {
	LoadCycleLogs(ctx context.Context) ([]string, error)
	ReplaceCycleLogs(ctx context.Context, dates []string) error
}

// CycleService 负责经期开始日期的记录与删除
// 内存中的 LogSet 是读取的唯一来源，每次变更后异步写回存储
type CycleService struct {
	mu        sync.Mutex
	logs      cycle.LogSet
	store     CycleLogStore
	persister *Persister
	logger    *zap.Logger
}

// NewCycleService 构造 CycleService，需要再调用 Load 读取已有数据
func NewCycleService(store CycleLogStore, persister *Persister, logger *zap.Logger) *CycleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CycleService{store: store, persister: persister, logger: logger}
}

// Load 从存储读取日志。读取失败或存在无法解析的日期时按空集合处理并记录错误。
func (s *CycleService) Load(ctx context.Context) {
	logs, err := s.loadLogs(ctx)
	if err != nil {
		s.logger.Error("failed to load cycle logs, starting empty", zap.Error(err))
		logs = cycle.LogSet{}
	}

	s.mu.Lock()
	s.logs = logs
	s.mu.Unlock()

	s.logger.Info("cycle logs loaded", zap.Int("count", logs.Len()))
}

func (s *CycleService) loadLogs(ctx context.Context) (cycle.LogSet, error) {
	raw, err := s.store.LoadCycleLogs(ctx)
	if err != nil {
		return cycle.LogSet{}, err
	}

	dates := make([]cycle.Date, 0, len(raw))
	for _, value := range raw {
		d, err := cycle.ParseDate(value)
		if err != nil {
			return cycle.LogSet{}, fmt.Errorf("parse stored cycle log: %w", err)
		}
		dates = append(dates, d)
	}
	return cycle.NewLogSet(dates...), nil
}

// Logs 返回当前日志集合（倒序）
func (s *CycleService) Logs() cycle.LogSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logs
}

// Statistics 基于当前日志重新计算平均周期长度
func (s *CycleService) Statistics() cycle.Statistics {
	return cycle.CalculateStatistics(s.Logs())
}

// LogCycleStart 记录一次经期开始，日期已存在时不做任何事
func (s *CycleService) LogCycleStart(date cycle.Date) (cycle.LogSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := s.logs.Add(date)
	if !changed {
		return s.logs, false
	}
	s.logs = next
	s.persistLocked()

	s.logger.Info("cycle start logged",
		zap.String("date", date.String()),
		zap.Int("average_length_days", cycle.CalculateStatistics(next).AverageLengthDays),
	)
	return next, true
}

// DeleteCycleStart 删除一次记录，日期不存在时不做任何事
func (s *CycleService) DeleteCycleStart(date cycle.Date) (cycle.LogSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := s.logs.Remove(date)
	if !changed {
		return s.logs, false
	}
	s.logs = next
	s.persistLocked()

	s.logger.Info("cycle start deleted", zap.String("date", date.String()))
	return next, true
}

func (s *CycleService) persistLocked() {
	snapshot := s.logs.Strings()
	s.persister.Submit("cycle_logs", func(ctx context.Context) error {
		return s.store.ReplaceCycleLogs(ctx, snapshot)
	})
}
