//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"go-hongbao/config"
	"go-hongbao/internal/repository/dao"
	"go-hongbao/internal/service"
	"go-hongbao/internal/workload"
)

var providerSet = wire.NewSet(
	newWorkerLogger,
	newFieldLogger,
	newRand,
	newMySQLClient,
	newDB,
	dao.NewBaseDao,
	service.NewBaseService,
)

func initWorker(ctx context.Context, conf *config.Config, opts *WorkerOptions) (*workload.Worker, func(), error) {
	panic(wire.Build(
		providerSet,
		dao.NewUsersDao,
		dao.NewGroupDao,
		dao.NewEnvelopeDao,
		service.NewUserService,
		service.NewGroupService,
		service.NewGraphService,
		service.NewEnvelopeService,
		newNotifier,
		workload.NewWorker,
	))
}

func initMaintainer(ctx context.Context, conf *config.Config, opts *WorkerOptions) (*Maintainer, func(), error) {
	panic(wire.Build(
		providerSet,
		dao.NewAuditDao,
		service.NewAuditService,
		service.NewCleanupService,
		service.NewSchemaService,
		wire.Struct(new(Maintainer), "*"),
	))
}
