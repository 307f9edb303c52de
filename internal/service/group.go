package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hongbao/internal/pkg/randutil"
	"go-hongbao/internal/repository/dao"
	"go-hongbao/internal/repository/model"
)

type GroupService struct {
	*BaseService
	dao      *dao.GroupDao
	usersDao *dao.UsersDao
}

func NewGroupService(baseService *BaseService, groupDao *dao.GroupDao, usersDao *dao.UsersDao) *GroupService {
	return &GroupService{BaseService: baseService, dao: groupDao, usersDao: usersDao}
}

func (s *GroupService) Dao() *dao.GroupDao {
	return s.dao
}

// CreateGroup 从好友及好友的好友中随机选取成员建群
// 候选人不足 members 时全部加入, 创建者本人只有出现在候选集合中才会成为成员
func (s *GroupService) CreateGroup(ctx context.Context, uid int, members int) (*model.Group, error) {
	if _, err := s.usersDao.FindById(ctx, uid); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ids, err := s.usersDao.TwoHopFriendIds(ctx, uid)
	if err != nil {
		return nil, err
	}

	picked := randutil.Sample(s.rnd, randutil.Unique(ids), members)

	group := &model.Group{
		CreateUid:    uid,
		Gname:        randutil.Gname(s.rnd),
		GroupMembers: len(picked),
	}

	err = s.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}

		if len(picked) == 0 {
			return nil
		}

		items := make([]*model.GroupMember, 0, len(picked))
		for _, mid := range picked {
			items = append(items, &model.GroupMember{Gid: group.Gid, Uid: mid})
		}

		return tx.Create(items).Error
	})

	if err != nil {
		s.Logger().WithFields(logrus.Fields{"uid": uid, "members": len(picked)}).WithError(err).Error("create group failed")
		return nil, fmt.Errorf("%w: %w", ErrTransaction, err)
	}

	return group, nil
}
