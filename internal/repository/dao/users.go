package dao

import (
	"context"

	"go-hongbao/internal/repository/model"
)

type UsersDao struct {
	*BaseDao
}

func NewUsersDao(baseDao *BaseDao) *UsersDao {
	return &UsersDao{BaseDao: baseDao}
}

// FindById ID查询
func (dao *UsersDao) FindById(ctx context.Context, uid int) (*model.User, error) {
	user := &model.User{}

	if err := dao.Db().WithContext(ctx).Where("uid = ?", uid).First(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// FindBank 查询用户银行账户
func (dao *UsersDao) FindBank(ctx context.Context, uid int) (*model.UserBank, error) {
	bank := &model.UserBank{}

	if err := dao.Db().WithContext(ctx).Where("uid = ?", uid).First(bank).Error; err != nil {
		return nil, err
	}

	return bank, nil
}

// GetUidRange 用户ID区间, 没有用户时返回 0,0
func (dao *UsersDao) GetUidRange(ctx context.Context) (*model.UidRange, error) {
	uidRange := &model.UidRange{}

	_, err := dao.QueryOne(ctx, uidRange, "SELECT COALESCE(MIN(uid), 0) AS min_uid, COALESCE(MAX(uid), 0) AS max_uid FROM `user`")
	if err != nil {
		return nil, err
	}

	return uidRange, nil
}

// FriendIds 用户的好友ID
func (dao *UsersDao) FriendIds(ctx context.Context, uid int) ([]int, error) {
	ids := make([]int, 0)

	if err := dao.QueryMany(ctx, &ids, "SELECT ufid FROM `user_friends` WHERE uid = ? ORDER BY ufid", uid); err != nil {
		return nil, err
	}

	return ids, nil
}

// FindFriendCandidates 从 ids 中筛选出存在且尚未成为好友的用户(不含自己)
func (dao *UsersDao) FindFriendCandidates(ctx context.Context, uid int, ids []int) ([]int, error) {
	candidates := make([]int, 0)
	if len(ids) == 0 {
		return candidates, nil
	}

	err := dao.QueryMany(ctx, &candidates, `
		SELECT uid FROM `+"`user`"+` WHERE uid IN ? AND uid <> ? AND uid NOT IN (
			SELECT ufid FROM user_friends WHERE uid = ?
		) ORDER BY uid`, ids, uid, uid)
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

// TwoHopFriendIds 好友及好友的好友(可能包含重复ID和用户自己)
func (dao *UsersDao) TwoHopFriendIds(ctx context.Context, uid int) ([]int, error) {
	ids := make([]int, 0)

	err := dao.QueryMany(ctx, &ids, `
		SELECT ufid FROM user_friends WHERE uid = ?
		UNION ALL
		SELECT b.ufid FROM user_friends a INNER JOIN user_friends b ON a.ufid = b.uid WHERE a.uid = ?`, uid, uid)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// TopUp 用户充值: 银行余额转入账户余额
func (dao *UsersDao) TopUp(ctx context.Context, uid int, amount int64) bool {
	// MySQL 只统计实际变更的行, 金额为 0 时不做校验
	if amount == 0 {
		return true
	}

	return dao.ExecuteAtomic(ctx,
		Stmt("UPDATE `user_bank` SET balance = balance - ? WHERE uid = ?", amount, uid).Affects(1),
		Stmt("UPDATE `user` SET balance = balance + ? WHERE uid = ?", amount, uid).Affects(1),
	)
}

// Withdraw 用户提现: 账户余额转回银行
func (dao *UsersDao) Withdraw(ctx context.Context, uid int, amount int64) bool {
	if amount == 0 {
		return true
	}

	return dao.ExecuteAtomic(ctx,
		Stmt("UPDATE `user_bank` SET balance = balance + ? WHERE uid = ?", amount, uid).Affects(1),
		Stmt("UPDATE `user` SET balance = balance - ? WHERE uid = ?", amount, uid).Affects(1),
	)
}
