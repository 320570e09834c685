package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	persistQueueSize      = 64
	defaultPersistTimeout = 5 * time.Second
)

type persistJob struct {
	name string
	run  func(ctx context.Context) error
	done chan struct{}
}

// Persister 在后台按提交顺序执行持久化写入。
// 调用方提交后立即返回，写入失败只记录日志，不回传给调用方；
// 下次启动时以存储中的数据为准。
type Persister struct {
	jobs    chan persistJob
	timeout time.Duration
	logger  *zap.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewPersister 启动单个写入协程。timeout<=0 时使用默认的 5 秒。
func NewPersister(logger *zap.Logger, timeout time.Duration) *Persister {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultPersistTimeout
	}

	p := &Persister{
		jobs:    make(chan persistJob, persistQueueSize),
		timeout: timeout,
		logger:  logger,
	}
	p.wg.Add(1)
	go p.loop()
	return p
}

// Submit 提交一次写入。Persister 关闭后提交的任务会被丢弃。
func (p *Persister) Submit(name string, run func(ctx context.Context) error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.logger.Warn("persist job dropped after close", zap.String("job", name))
		return
	}
	p.jobs <- persistJob{name: name, run: run}
}

// Flush 等待此前提交的全部写入完成。
func (p *Persister) Flush() {
	done := make(chan struct{})

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return
	}
	p.jobs <- persistJob{name: "flush", done: done}
	p.mu.RUnlock()

	<-done
}

// Close 执行完队列中剩余的写入后退出，可重复调用。
func (p *Persister) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Persister) loop() {
	defer p.wg.Done()

	for job := range p.jobs {
		if job.run != nil {
			p.execute(job)
		}
		if job.done != nil {
			close(job.done)
		}
	}
}

func (p *Persister) execute(job persistJob) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	start := time.Now()
	if err := job.run(ctx); err != nil {
		p.logger.Error("persist job failed",
			zap.String("job", job.name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	p.logger.Debug("persist job finished",
		zap.String("job", job.name),
		zap.Duration("duration", time.Since(start)),
	)
}
