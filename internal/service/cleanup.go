package service

import (
	"context"

	"gorm.io/gorm"

	"go-hongbao/internal/repository/model"
)

type tabler interface {
	TableName() string
}

type CleanupService struct {
	*BaseService
}

func NewCleanupService(baseService *BaseService) *CleanupService {
	return &CleanupService{BaseService: baseService}
}

// Clear 删除所有表数据, 返回每张表删除的行数
func (s *CleanupService) Clear(ctx context.Context) (map[string]int64, error) {
	deleted := make(map[string]int64)
	models := model.All()

	err := s.Transaction(ctx, func(tx *gorm.DB) error {
		for i := len(models) - 1; i >= 0; i-- {
			res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(models[i])
			if res.Error != nil {
				return res.Error
			}

			deleted[models[i].(tabler).TableName()] = res.RowsAffected
		}
		return nil
	})

	if err != nil {
		s.Logger().WithError(err).Error("cleanup failed")
		return nil, err
	}

	s.Logger().WithField("deleted", deleted).Info("cleanup finished")

	return deleted, nil
}
