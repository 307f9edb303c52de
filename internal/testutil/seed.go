package testutil

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"go-hongbao/internal/repository/model"
)

// SeedUser 直接写入用户和银行账户
func SeedUser(t *testing.T, db *gorm.DB, balance, reserve int64) int {
	t.Helper()

	user := &model.User{
		Uname:        "seed",
		BirthDay:     time.Date(1990, 1, 1, 0, 0, 0, 0, time.Local),
		AddrProvince: 1,
		AddrCity:     1,
		Balance:      balance,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.Create(&model.UserBank{Uid: user.Uid, Balance: reserve}).Error; err != nil {
		t.Fatalf("seed user bank: %v", err)
	}

	return user.Uid
}

// SeedFriends 写入双向好友关系并维护好友数
func SeedFriends(t *testing.T, db *gorm.DB, uid int, friends ...int) {
	t.Helper()

	for _, fid := range friends {
		edges := []*model.UserFriends{{Uid: uid, Ufid: fid}, {Uid: fid, Ufid: uid}}
		if err := db.Create(edges).Error; err != nil {
			t.Fatalf("seed friends: %v", err)
		}
		if err := db.Model(&model.User{}).Where("uid IN ?", []int{uid, fid}).
			Update("friends", gorm.Expr("friends + 1")).Error; err != nil {
			t.Fatalf("seed friend counter: %v", err)
		}
	}
}

// SeedGroup 创建群并加入成员
func SeedGroup(t *testing.T, db *gorm.DB, creator int, members ...int) int {
	t.Helper()

	group := &model.Group{CreateUid: creator, Gname: "seed", GroupMembers: len(members)}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("seed group: %v", err)
	}
	for _, uid := range members {
		if err := db.Create(&model.GroupMember{Gid: group.Gid, Uid: uid}).Error; err != nil {
			t.Fatalf("seed group member: %v", err)
		}
	}

	return group.Gid
}

// Balance 用户账户余额
func Balance(t *testing.T, db *gorm.DB, uid int) int64 {
	t.Helper()

	user := &model.User{}
	if err := db.Where("uid = ?", uid).First(user).Error; err != nil {
		t.Fatalf("load user %d: %v", uid, err)
	}
	return user.Balance
}

// BankBalance 用户银行余额
func BankBalance(t *testing.T, db *gorm.DB, uid int) int64 {
	t.Helper()

	bank := &model.UserBank{}
	if err := db.Where("uid = ?", uid).First(bank).Error; err != nil {
		t.Fatalf("load user bank %d: %v", uid, err)
	}
	return bank.Balance
}

// Count 表记录数
func Count(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()

	var count int64
	if err := db.Model(value).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}
