package dao

import (
	"context"

	"go-hongbao/internal/repository/model"
)

type EnvelopeDao struct {
	*BaseDao
}

func NewEnvelopeDao(baseDao *BaseDao) *EnvelopeDao {
	return &EnvelopeDao{BaseDao: baseDao}
}

// FindById 查询红包及领取明细
func (dao *EnvelopeDao) FindById(ctx context.Context, reid int) (*model.Envelope, error) {
	envelope := &model.Envelope{}

	if err := dao.Db().WithContext(ctx).Where("reid = ?", reid).First(envelope).Error; err != nil {
		return nil, err
	}

	details, err := dao.FindDetails(ctx, reid)
	if err != nil {
		return nil, err
	}
	envelope.Details = details

	return envelope, nil
}

// FindDetails 红包领取明细
func (dao *EnvelopeDao) FindDetails(ctx context.Context, reid int) ([]*model.EnvelopeDetail, error) {
	items := make([]*model.EnvelopeDetail, 0)

	if err := dao.Db().WithContext(ctx).Where("reid = ?", reid).Order("uid").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}
