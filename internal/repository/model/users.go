package model

import "time"

type User struct {
	Uid          int       `gorm:"column:uid;primary_key;AUTO_INCREMENT" json:"uid"`             // 用户ID
	Uname        string    `gorm:"column:uname;size:64;NOT NULL" json:"uname"`                   // 用户名称
	BirthDay     time.Time `gorm:"column:birth_day;type:date" json:"birth_day"`                  // 生日
	AddrProvince int       `gorm:"column:addr_province;default:0;NOT NULL" json:"addr_province"` // 省份id
	AddrCity     int       `gorm:"column:addr_city;default:0;NOT NULL" json:"addr_city"`         // 城市id
	Friends      int       `gorm:"column:friends;default:0;NOT NULL" json:"friends"`             // 好友数
	Balance      int64     `gorm:"column:balance;default:0;NOT NULL" json:"balance"`             // 余额(分)
}

func (m *User) TableName() string {
	return "user"
}

type UserBank struct {
	Uid     int   `gorm:"column:uid;primaryKey;autoIncrement:false" json:"uid"` // 用户ID
	Balance int64 `gorm:"column:balance;default:0;NOT NULL" json:"balance"`     // 银行余额(分)
}

func (m *UserBank) TableName() string {
	return "user_bank"
}

// UserFriends 好友关系, 双向各存一条
type UserFriends struct {
	Uid  int `gorm:"column:uid;primaryKey;autoIncrement:false" json:"uid"`   // 用户ID
	Ufid int `gorm:"column:ufid;primaryKey;autoIncrement:false" json:"ufid"` // 好友ID
}

func (m *UserFriends) TableName() string {
	return "user_friends"
}

// UidRange 用户ID区间
type UidRange struct {
	MinUid int `gorm:"column:min_uid" json:"min_uid"`
	MaxUid int `gorm:"column:max_uid" json:"max_uid"`
}

func (r *UidRange) Empty() bool {
	return r.MaxUid == 0
}
