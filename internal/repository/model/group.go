package model

type Group struct {
	Gid          int    `gorm:"column:gid;primary_key;AUTO_INCREMENT" json:"gid"`             // 群ID
	CreateUid    int    `gorm:"column:create_uid;default:0;NOT NULL;index" json:"create_uid"` // 创建者ID
	Gname        string `gorm:"column:gname;size:64;NOT NULL" json:"gname"`                   // 群名称
	GroupMembers int    `gorm:"column:group_members;default:0;NOT NULL" json:"group_members"` // 群成员数
}

func (m *Group) TableName() string {
	return "group"
}

type GroupMember struct {
	Gid int `gorm:"column:gid;primaryKey;autoIncrement:false" json:"gid"`       // 群ID
	Uid int `gorm:"column:uid;primaryKey;autoIncrement:false;index" json:"uid"` // 成员ID
}

func (m *GroupMember) TableName() string {
	return "group_member"
}
