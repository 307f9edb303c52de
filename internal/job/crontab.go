package job

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type CronHandle interface {
	GetServiceName() string
	Spec() string
	Handle(ctx context.Context) error
}

// Crontab 定时任务调度, 同一任务上次未执行完时跳过本次
type Crontab struct {
	log       logrus.FieldLogger
	scheduler *cron.Cron
	ctx       context.Context
}

// NewCrontab 注册所有任务, 规则解析失败时返回错误
func NewCrontab(log logrus.FieldLogger, handles ...CronHandle) (*Crontab, error) {
	logger := cron.PrintfLogger(log)

	c := &Crontab{
		log:       log,
		scheduler: cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger))),
		ctx:       context.Background(),
	}

	for _, handle := range handles {
		handle := handle

		if _, err := c.scheduler.AddFunc(handle.Spec(), func() { c.handle(handle) }); err != nil {
			return nil, fmt.Errorf("cron [%s] spec [%s]: %w", handle.GetServiceName(), handle.Spec(), err)
		}
	}

	return c, nil
}

func (c *Crontab) handle(handle CronHandle) {
	log := c.log.WithField("handle", handle.GetServiceName())

	if err := handle.Handle(c.ctx); err != nil {
		log.WithError(err).Error("cron handle failed")
		return
	}

	log.Debug("cron handle finished")
}

// Start 启动调度并阻塞到 ctx 结束, 返回前等待正在执行的任务完成
func (c *Crontab) Start(ctx context.Context) {
	c.ctx = ctx

	c.scheduler.Start()
	<-ctx.Done()
	<-c.scheduler.Stop().Done()
}
