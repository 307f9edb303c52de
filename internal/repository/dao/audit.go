package dao

import (
	"context"
)

type AuditDao struct {
	*BaseDao
}

func NewAuditDao(baseDao *BaseDao) *AuditDao {
	return &AuditDao{BaseDao: baseDao}
}

// MoneyTotals 账户余额与银行余额汇总
type MoneyTotals struct {
	Users       int64 `gorm:"column:users" json:"users"`
	UserBalance int64 `gorm:"column:user_balance" json:"user_balance"`
	BankBalance int64 `gorm:"column:bank_balance" json:"bank_balance"`
}

// EnvelopeMismatch 红包汇总信息与明细不一致
type EnvelopeMismatch struct {
	Reid         int   `gorm:"column:reid" json:"reid"`
	Amount       int64 `gorm:"column:amount" json:"amount"`
	DetailAmount int64 `gorm:"column:detail_amount" json:"detail_amount"`
	PickupUsers  int   `gorm:"column:pickup_users" json:"pickup_users"`
	Details      int   `gorm:"column:details" json:"details"`
}

// CounterMismatch 冗余计数与实际行数不一致
type CounterMismatch struct {
	Id      int `gorm:"column:id" json:"id"`
	Counter int `gorm:"column:counter" json:"counter"`
	Actual  int `gorm:"column:actual" json:"actual"`
}

// FriendEdge 好友关系边
type FriendEdge struct {
	Uid  int `gorm:"column:uid" json:"uid"`
	Ufid int `gorm:"column:ufid" json:"ufid"`
}

func (dao *AuditDao) MoneyTotals(ctx context.Context) (*MoneyTotals, error) {
	totals := &MoneyTotals{}

	_, err := dao.QueryOne(ctx, totals, `
		SELECT
			(SELECT COUNT(*) FROM user_bank) AS users,
			(SELECT COALESCE(SUM(balance), 0) FROM `+"`user`"+`) AS user_balance,
			(SELECT COALESCE(SUM(balance), 0) FROM user_bank) AS bank_balance`)
	if err != nil {
		return nil, err
	}

	return totals, nil
}

// EnvelopeMismatches 明细金额之和不等于红包金额, 或明细条数不等于领取人数
func (dao *AuditDao) EnvelopeMismatches(ctx context.Context, limit int) ([]*EnvelopeMismatch, error) {
	items := make([]*EnvelopeMismatch, 0)

	err := dao.QueryMany(ctx, &items, `
		SELECT e.reid, e.amount, e.pickup_users,
			COALESCE(SUM(d.amount), 0) AS detail_amount, COUNT(d.uid) AS details
		FROM envelope e LEFT JOIN envelope_detail d ON d.reid = e.reid
		GROUP BY e.reid, e.amount, e.pickup_users
		HAVING COALESCE(SUM(d.amount), 0) <> e.amount OR COUNT(d.uid) <> e.pickup_users
		ORDER BY e.reid LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// BestLuckMismatches 手气最佳用户的领取金额不是该红包的最大金额
func (dao *AuditDao) BestLuckMismatches(ctx context.Context, limit int) ([]int, error) {
	ids := make([]int, 0)

	err := dao.QueryMany(ctx, &ids, `
		SELECT e.reid FROM envelope e
		WHERE e.max_mount <> (SELECT COALESCE(MAX(d.amount), 0) FROM envelope_detail d WHERE d.reid = e.reid)
			OR NOT EXISTS (
				SELECT 1 FROM envelope_detail d WHERE d.reid = e.reid AND d.uid = e.best_luck_uid AND d.amount = e.max_mount
			)
		ORDER BY e.reid LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// AsymmetricFriends 只有单向记录的好友关系
func (dao *AuditDao) AsymmetricFriends(ctx context.Context, limit int) ([]*FriendEdge, error) {
	items := make([]*FriendEdge, 0)

	err := dao.QueryMany(ctx, &items, `
		SELECT a.uid, a.ufid FROM user_friends a
		LEFT JOIN user_friends b ON b.uid = a.ufid AND b.ufid = a.uid
		WHERE b.uid IS NULL
		ORDER BY a.uid, a.ufid LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// FriendCounterMismatches user.friends 与好友记录数不一致
func (dao *AuditDao) FriendCounterMismatches(ctx context.Context, limit int) ([]*CounterMismatch, error) {
	items := make([]*CounterMismatch, 0)

	err := dao.QueryMany(ctx, &items, `
		SELECT u.uid AS id, u.friends AS counter, COALESCE(f.cnt, 0) AS actual
		FROM `+"`user`"+` u LEFT JOIN (SELECT uid, COUNT(*) AS cnt FROM user_friends GROUP BY uid) f ON f.uid = u.uid
		WHERE u.friends <> COALESCE(f.cnt, 0)
		ORDER BY u.uid LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// MemberCounterMismatches group.group_members 与群成员记录数不一致
func (dao *AuditDao) MemberCounterMismatches(ctx context.Context, limit int) ([]*CounterMismatch, error) {
	items := make([]*CounterMismatch, 0)

	err := dao.QueryMany(ctx, &items, `
		SELECT g.gid AS id, g.group_members AS counter, COALESCE(m.cnt, 0) AS actual
		FROM `+"`group`"+` g LEFT JOIN (SELECT gid, COUNT(*) AS cnt FROM group_member GROUP BY gid) m ON m.gid = g.gid
		WHERE g.group_members <> COALESCE(m.cnt, 0)
		ORDER BY g.gid LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	return items, nil
}
