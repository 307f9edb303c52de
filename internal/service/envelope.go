package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hongbao/internal/repository/dao"
	"go-hongbao/internal/repository/model"
)

type EnvelopeService struct {
	*BaseService
	dao      *dao.EnvelopeDao
	users    *UserService
	groupDao *dao.GroupDao
	notifier EnvelopeNotifier
}

// NewEnvelopeService notifier 可以为 nil
func NewEnvelopeService(baseService *BaseService, envelopeDao *dao.EnvelopeDao, users *UserService, groupDao *dao.GroupDao, notifier EnvelopeNotifier) *EnvelopeService {
	return &EnvelopeService{
		BaseService: baseService,
		dao:         envelopeDao,
		users:       users,
		groupDao:    groupDao,
		notifier:    notifier,
	}
}

func (s *EnvelopeService) Dao() *dao.EnvelopeDao {
	return s.dao
}

// Distribute 发红包
// 余额不足时先从银行账户充值(单独提交), 然后在用户随机一个群内把红包拆给打乱顺序后的群成员
// 扣款、红包、入账、领取明细在同一个事务中完成
func (s *EnvelopeService) Distribute(ctx context.Context, uid int, amount int64) (*model.Envelope, error) {
	if amount < 1 {
		return nil, ErrInvalidAmount
	}

	log := s.Logger().WithFields(logrus.Fields{"uid": uid, "amount": amount})

	user, err := s.users.Dao().FindById(ctx, uid)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Warn("envelope sender not found")
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Balance < amount {
		if !s.users.TopUp(ctx, uid, amount) {
			log.Warn("top up before envelope failed")
		}
	}

	gids, err := s.groupDao.GroupIdsByMember(ctx, uid)
	if err != nil {
		return nil, err
	}

	if len(gids) == 0 {
		log.Warn("envelope sender has no group")
		return nil, ErrNoGroup
	}

	gid := gids[s.rnd.Intn(len(gids))]
	log = log.WithField("gid", gid)

	members, err := s.groupDao.MemberIds(ctx, gid)
	if err != nil {
		return nil, err
	}

	if len(members) == 0 {
		log.Warn("envelope group has no members")
		return nil, ErrNoMembers
	}

	s.rnd.Shuffle(len(members), func(i, j int) {
		members[i], members[j] = members[j], members[i]
	})

	plan := splitEnvelope(members, amount, s.rnd)

	envelope := &model.Envelope{Uid: uid, Gid: gid, Amount: amount}

	err = s.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).Where("uid = ?", uid).Update("balance", gorm.Expr("balance - ?", amount))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}

		if err := tx.Create(envelope).Error; err != nil {
			return err
		}

		for _, detail := range plan.Details {
			detail.Reid = envelope.Reid

			res := tx.Model(&model.User{}).Where("uid = ?", detail.Uid).Update("balance", gorm.Expr("balance + ?", detail.Amount))
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected == 0 {
				return fmt.Errorf("envelope member %d: %w", detail.Uid, ErrUserNotFound)
			}

			if err := tx.Create(detail).Error; err != nil {
				return err
			}
		}

		return tx.Model(envelope).Updates(map[string]interface{}{
			"best_luck_uid": plan.BestLuckUid,
			"max_mount":     plan.MaxMount,
			"pickup_users":  len(plan.Details),
		}).Error
	})

	if err != nil {
		log.WithError(err).Error("envelope transaction rollback")
		return nil, fmt.Errorf("%w: %w", ErrTransaction, err)
	}

	envelope.BestLuckUid = plan.BestLuckUid
	envelope.MaxMount = plan.MaxMount
	envelope.PickupUsers = len(plan.Details)
	envelope.Details = plan.Details

	log.WithFields(logrus.Fields{"reid": envelope.Reid, "pickup_users": envelope.PickupUsers}).Debug("envelope distributed")

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, envelope); err != nil {
			log.WithError(err).Warn("envelope notify failed")
		}
	}

	return envelope, nil
}
