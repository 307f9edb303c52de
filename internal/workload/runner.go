package workload

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Factory 创建第 index 个 worker, cleanup 释放其连接和日志文件
type Factory func(ctx context.Context, index int) (*Worker, func(), error)

// Phase 在 worker 上执行的压测阶段
type Phase func(ctx context.Context, w *Worker) (*Tally, error)

// Summary 所有 worker 的汇总结果
type Summary struct {
	Phase     string   `json:"phase"`
	Workers   []*Tally `json:"workers"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Elapsed   string   `json:"elapsed"`
}

type Runner struct {
	workers int
	factory Factory
	log     logrus.FieldLogger
}

func NewRunner(workers int, factory Factory, log logrus.FieldLogger) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{workers: workers, factory: factory, log: log}
}

// Run 并发启动所有 worker 执行 phase
// 每个 worker 只写自己的结果槽位, 全部结束后再汇总; 任意 worker 返回错误会取消其它 worker
func (r *Runner) Run(ctx context.Context, name string, phase Phase) (*Summary, error) {
	start := time.Now()
	tallies := make([]*Tally, r.workers)

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.workers; i++ {
		index := i

		eg.Go(func() error {
			w, cleanup, err := r.factory(ctx, index)
			if err != nil {
				return fmt.Errorf("worker %d: %w", index, err)
			}
			defer cleanup()

			tally, err := phase(ctx, w)
			if tally != nil {
				tally.Worker = index
				tallies[index] = tally
			}

			if err != nil {
				return fmt.Errorf("worker %d: %w", index, err)
			}

			return nil
		})
	}

	err := eg.Wait()

	summary := &Summary{Phase: name, Workers: make([]*Tally, 0, r.workers)}
	for _, tally := range tallies {
		if tally == nil {
			continue
		}
		summary.Workers = append(summary.Workers, tally)
		summary.Succeeded += tally.Succeeded
		summary.Failed += tally.Failed
	}
	summary.Elapsed = time.Since(start).String()

	r.log.WithFields(logrus.Fields{
		"phase":     name,
		"workers":   r.workers,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"elapsed":   summary.Elapsed,
	}).Info("workload finished")

	return summary, err
}

// PreparePhase 构造数据阶段
func PreparePhase(opts PrepareOptions) Phase {
	return func(ctx context.Context, w *Worker) (*Tally, error) {
		return w.Prepare(ctx, opts)
	}
}

// RunPhase 发红包阶段
func RunPhase(opts RunOptions) Phase {
	return func(ctx context.Context, w *Worker) (*Tally, error) {
		return w.Run(ctx, opts)
	}
}
