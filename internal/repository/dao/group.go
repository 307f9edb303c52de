package dao

import (
	"context"

	"go-hongbao/internal/repository/model"
)

type GroupDao struct {
	*BaseDao
}

func NewGroupDao(baseDao *BaseDao) *GroupDao {
	return &GroupDao{BaseDao: baseDao}
}

func (dao *GroupDao) FindById(ctx context.Context, gid int) (*model.Group, error) {
	info := &model.Group{}

	if err := dao.Db().WithContext(ctx).Where("gid = ?", gid).First(info).Error; err != nil {
		return nil, err
	}

	return info, nil
}

// GroupIdsByMember 用户所在的群
func (dao *GroupDao) GroupIdsByMember(ctx context.Context, uid int) ([]int, error) {
	ids := make([]int, 0)

	if err := dao.QueryMany(ctx, &ids, "SELECT gid FROM `group_member` WHERE uid = ? ORDER BY gid", uid); err != nil {
		return nil, err
	}

	return ids, nil
}

// MemberIds 群成员ID
func (dao *GroupDao) MemberIds(ctx context.Context, gid int) ([]int, error) {
	ids := make([]int, 0)

	if err := dao.QueryMany(ctx, &ids, "SELECT uid FROM `group_member` WHERE gid = ? ORDER BY uid", gid); err != nil {
		return nil, err
	}

	return ids, nil
}
