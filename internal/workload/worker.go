package workload

import (
	"context"
	"errors"
	"math/rand"

	"github.com/sirupsen/logrus"

	"go-hongbao/internal/pkg/randutil"
	"go-hongbao/internal/repository/dao"
	"go-hongbao/internal/service"
)

var ErrNoUsers = errors.New("没有用户数据, 请先执行 prepare")

// PrepareOptions 单个 worker 构造社交关系的数量配置
type PrepareOptions = service.BuildOptions

// RunOptions 单个 worker 发红包的数量配置
type RunOptions struct {
	SendingUsers int
	Envelopes    int
	Amount       int64
}

// Tally 单个 worker 的执行结果
type Tally struct {
	Worker    int                  `json:"worker"`
	Succeeded int                  `json:"succeeded"`
	Failed    int                  `json:"failed"`
	Prepared  *service.BuildResult `json:"prepared,omitempty"`
}

// Worker 持有独立连接、随机数源和日志的压测单元, 不在 goroutine 间共享
type Worker struct {
	log       logrus.FieldLogger
	rnd       *rand.Rand
	usersDao  *dao.UsersDao
	graph     *service.GraphService
	envelopes *service.EnvelopeService
}

func NewWorker(log logrus.FieldLogger, rnd *rand.Rand, usersDao *dao.UsersDao, graph *service.GraphService, envelopes *service.EnvelopeService) *Worker {
	return &Worker{log: log, rnd: rnd, usersDao: usersDao, graph: graph, envelopes: envelopes}
}

// Prepare 构造社交关系数据
func (w *Worker) Prepare(ctx context.Context, opts PrepareOptions) (*Tally, error) {
	result, err := w.graph.Build(ctx, opts)
	if result == nil {
		return nil, err
	}

	tally := &Tally{
		Succeeded: result.Users + result.Groups,
		Failed:    result.Failures,
		Prepared:  result,
	}

	if errors.Is(err, context.Canceled) {
		w.log.Warn("prepare cancelled")
		return tally, nil
	}

	return tally, err
}

// Run 随机选择发送者发红包, 只有读取用户ID区间失败时返回错误
func (w *Worker) Run(ctx context.Context, opts RunOptions) (*Tally, error) {
	uidRange, err := w.usersDao.GetUidRange(ctx)
	if err != nil {
		return nil, err
	}

	if uidRange.Empty() {
		return nil, ErrNoUsers
	}

	tally := &Tally{}

	for i := 0; i < opts.SendingUsers; i++ {
		uid := randutil.Between(w.rnd, uidRange.MinUid, uidRange.MaxUid)

		for j := 0; j < opts.Envelopes; j++ {
			if ctx.Err() != nil {
				w.log.WithField("succeeded", tally.Succeeded).Warn("run cancelled")
				return tally, nil
			}

			if _, err := w.envelopes.Distribute(ctx, uid, opts.Amount); err != nil {
				tally.Failed++
				continue
			}

			tally.Succeeded++
		}
	}

	w.log.WithFields(logrus.Fields{
		"succeeded": tally.Succeeded,
		"failed":    tally.Failed,
	}).Info("envelopes finished")

	return tally, nil
}
