package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"go-hongbao/config"
	"go-hongbao/internal/repository/dao"
)

// auditLimit 每类问题最多返回的记录数
const auditLimit = 100

// AuditReport 数据一致性检查结果
type AuditReport struct {
	Money                   *dao.MoneyTotals        `json:"money"`
	ExpectedMoney           int64                   `json:"expected_money"`
	EnvelopeMismatches      []*dao.EnvelopeMismatch `json:"envelope_mismatches"`
	BestLuckMismatches      []int                   `json:"best_luck_mismatches"`
	AsymmetricFriends       []*dao.FriendEdge       `json:"asymmetric_friends"`
	FriendCounterMismatches []*dao.CounterMismatch  `json:"friend_counter_mismatches"`
	MemberCounterMismatches []*dao.CounterMismatch  `json:"member_counter_mismatches"`
}

// MoneyConserved 账户余额与银行余额之和等于初始发放总额
func (r *AuditReport) MoneyConserved() bool {
	return r.Money.UserBalance+r.Money.BankBalance == r.ExpectedMoney
}

func (r *AuditReport) OK() bool {
	return r.MoneyConserved() &&
		len(r.EnvelopeMismatches) == 0 &&
		len(r.BestLuckMismatches) == 0 &&
		len(r.AsymmetricFriends) == 0 &&
		len(r.FriendCounterMismatches) == 0 &&
		len(r.MemberCounterMismatches) == 0
}

type AuditService struct {
	*BaseService
	dao     *dao.AuditDao
	reserve int64
}

func NewAuditService(baseService *BaseService, auditDao *dao.AuditDao, conf *config.Config) *AuditService {
	return &AuditService{BaseService: baseService, dao: auditDao, reserve: conf.Prepare.Reserve}
}

// Check 检查资金守恒、红包明细、手气最佳、好友关系和计数字段
func (s *AuditService) Check(ctx context.Context) (*AuditReport, error) {
	var (
		err    error
		report = &AuditReport{}
	)

	if report.Money, err = s.dao.MoneyTotals(ctx); err != nil {
		return nil, err
	}
	report.ExpectedMoney = report.Money.Users * s.reserve

	if report.EnvelopeMismatches, err = s.dao.EnvelopeMismatches(ctx, auditLimit); err != nil {
		return nil, err
	}

	if report.BestLuckMismatches, err = s.dao.BestLuckMismatches(ctx, auditLimit); err != nil {
		return nil, err
	}

	if report.AsymmetricFriends, err = s.dao.AsymmetricFriends(ctx, auditLimit); err != nil {
		return nil, err
	}

	if report.FriendCounterMismatches, err = s.dao.FriendCounterMismatches(ctx, auditLimit); err != nil {
		return nil, err
	}

	if report.MemberCounterMismatches, err = s.dao.MemberCounterMismatches(ctx, auditLimit); err != nil {
		return nil, err
	}

	log := s.Logger().WithFields(logrus.Fields{
		"users":        report.Money.Users,
		"user_balance": report.Money.UserBalance,
		"bank_balance": report.Money.BankBalance,
		"expected":     report.ExpectedMoney,
	})
	if report.OK() {
		log.Info("audit passed")
	} else {
		log.WithFields(logrus.Fields{
			"envelopes":       len(report.EnvelopeMismatches),
			"best_luck":       len(report.BestLuckMismatches),
			"asymmetric":      len(report.AsymmetricFriends),
			"friend_counters": len(report.FriendCounterMismatches),
			"member_counters": len(report.MemberCounterMismatches),
		}).Error("audit failed")
	}

	return report, nil
}
