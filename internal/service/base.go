package service

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hongbao/internal/repository/dao"
)

// BaseService 同一个 worker 内的服务共享数据库连接和随机数源
type BaseService struct {
	dao *dao.BaseDao
	rnd *rand.Rand
}

func NewBaseService(baseDao *dao.BaseDao, rnd *rand.Rand) *BaseService {
	return &BaseService{dao: baseDao, rnd: rnd}
}

func (base *BaseService) Db() *gorm.DB {
	return base.dao.Db()
}

func (base *BaseService) Logger() logrus.FieldLogger {
	return base.dao.Logger()
}

func (base *BaseService) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return base.dao.Transaction(ctx, fn)
}
