package service

import (
	"context"

	"go-hongbao/internal/repository/model"
)

type SchemaService struct {
	*BaseService
}

func NewSchemaService(baseService *BaseService) *SchemaService {
	return &SchemaService{BaseService: baseService}
}

// Migrate 创建或更新全部数据表
func (s *SchemaService) Migrate(ctx context.Context) error {
	if err := s.Db().WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		s.Logger().WithError(err).Error("migrate failed")
		return err
	}

	s.Logger().Info("migrate finished")

	return nil
}
