package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hongbao/config"
	"go-hongbao/internal/pkg/randutil"
	"go-hongbao/internal/repository/dao"
	"go-hongbao/internal/repository/model"
)

type UserService struct {
	*BaseService
	dao     *dao.UsersDao
	reserve int64
}

func NewUserService(baseService *BaseService, usersDao *dao.UsersDao, conf *config.Config) *UserService {
	return &UserService{BaseService: baseService, dao: usersDao, reserve: conf.Prepare.Reserve}
}

func (s *UserService) Dao() *dao.UsersDao {
	return s.dao
}

// CreateUser 创建随机用户及其银行账户
func (s *UserService) CreateUser(ctx context.Context) (int, error) {
	user := &model.User{
		Uname:        randutil.Uname(s.rnd),
		BirthDay:     randutil.BirthDay(s.rnd),
		AddrProvince: randutil.Province(s.rnd),
		AddrCity:     randutil.City(s.rnd),
	}

	err := s.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		return tx.Create(&model.UserBank{Uid: user.Uid, Balance: s.reserve}).Error
	})

	if err != nil {
		s.Logger().WithError(err).Error("create user failed")
		return 0, fmt.Errorf("%w: %w", ErrTransaction, err)
	}

	return user.Uid, nil
}

// CreateFriends 为用户随机添加好友, 返回实际新增的好友数
// @params uid   用户ID
// @params count 随机抽取的用户数, 不存在或已是好友的会被跳过
func (s *UserService) CreateFriends(ctx context.Context, uid int, count int) (int, error) {
	if _, err := s.dao.FindById(ctx, uid); err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	if count <= 0 {
		return 0, nil
	}

	uidRange, err := s.dao.GetUidRange(ctx)
	if err != nil {
		return 0, err
	}

	ids := make([]int, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, randutil.Between(s.rnd, uidRange.MinUid, uidRange.MaxUid))
	}

	candidates, err := s.dao.FindFriendCandidates(ctx, uid, randutil.Unique(ids))
	if err != nil {
		return 0, err
	}

	if len(candidates) == 0 {
		return 0, nil
	}

	edges := make([]*model.UserFriends, 0, len(candidates)*2)
	for _, fid := range candidates {
		edges = append(edges, &model.UserFriends{Uid: uid, Ufid: fid}, &model.UserFriends{Uid: fid, Ufid: uid})
	}

	err = s.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(edges).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.User{}).Where("uid IN ?", candidates).Update("friends", gorm.Expr("friends + 1")).Error; err != nil {
			return err
		}

		return tx.Model(&model.User{}).Where("uid = ?", uid).Update("friends", gorm.Expr("friends + ?", len(candidates))).Error
	})

	if err != nil {
		s.Logger().WithFields(logrus.Fields{"uid": uid, "friends": len(candidates)}).WithError(err).Error("create friends failed")
		return 0, fmt.Errorf("%w: %w", ErrTransaction, err)
	}

	return len(candidates), nil
}

// TopUp 从银行账户转入余额
func (s *UserService) TopUp(ctx context.Context, uid int, amount int64) bool {
	return s.dao.TopUp(ctx, uid, amount)
}

// Withdraw 余额转回银行账户
func (s *UserService) Withdraw(ctx context.Context, uid int, amount int64) bool {
	return s.dao.Withdraw(ctx, uid, amount)
}
