package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hongbao/config"
	"go-hongbao/internal/pkg/logger"
	"go-hongbao/internal/pkg/randutil"
	"go-hongbao/internal/provider"
	"go-hongbao/internal/service"
)

// WorkerOptions 创建单个 worker 或维护实例所需参数
type WorkerOptions struct {
	Index  int    // worker 编号, 维护实例为 -1
	Server string // 指定 MySQL 配置名称, 为空时随机选择
	Seed   int64  // 随机数种子, 为 0 时使用当前时间
}

// Maintainer 执行迁移、清理和一致性检查的单连接实例
type Maintainer struct {
	Log     logrus.FieldLogger
	Audit   *service.AuditService
	Cleanup *service.CleanupService
	Schema  *service.SchemaService
}

func newWorkerLogger(conf *config.Config, opts *WorkerOptions) (*logrus.Logger, func(), error) {
	return logger.New(conf.Log, logger.WorkerName(conf.App.Name, opts.Index))
}

func newFieldLogger(log *logrus.Logger, opts *WorkerOptions) logrus.FieldLogger {
	return log.WithFields(logrus.Fields{"worker": opts.Index, "pid": os.Getpid()})
}

func newRand(opts *WorkerOptions) *rand.Rand {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return randutil.NewRand(seed + int64(opts.Index) + 1)
}

func newMySQLClient(ctx context.Context, conf *config.Config, opts *WorkerOptions, rnd *rand.Rand, log logrus.FieldLogger) (*provider.MySQLClient, func(), error) {
	return provider.NewMySQLClient(ctx, conf, opts.Server, rnd, log)
}

func newDB(client *provider.MySQLClient) *gorm.DB {
	return client.DB
}

// newNotifier 未配置 RabbitMQ 时返回 nil
func newNotifier(conf *config.Config) (service.EnvelopeNotifier, func(), error) {
	if !conf.RabbitMQ.Enabled() {
		return nil, func() {}, nil
	}

	_, channel, cleanup, err := provider.NewRabbitMQClient(conf)
	if err != nil {
		return nil, nil, err
	}

	return service.NewAmqpEnvelopeNotifier(channel, conf), cleanup, nil
}
