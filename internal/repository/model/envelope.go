package model

type Envelope struct {
	Reid        int               `gorm:"column:reid;primary_key;AUTO_INCREMENT" json:"reid"`           // 红包ID
	Uid         int               `gorm:"column:uid;default:0;NOT NULL;index" json:"uid"`               // 发送者ID
	Gid         int               `gorm:"column:gid;default:0;NOT NULL" json:"gid"`                     // 群ID
	Amount      int64             `gorm:"column:amount;default:0;NOT NULL" json:"amount"`               // 红包金额(分)
	BestLuckUid int               `gorm:"column:best_luck_uid;default:0;NOT NULL" json:"best_luck_uid"` // 手气最佳用户ID
	MaxMount    int64             `gorm:"column:max_mount;default:0;NOT NULL" json:"max_mount"`         // 最大领取金额
	PickupUsers int               `gorm:"column:pickup_users;default:0;NOT NULL" json:"pickup_users"`   // 领取人数
	Details     []*EnvelopeDetail `gorm:"-" json:"details,omitempty"`
}

func (m *Envelope) TableName() string {
	return "envelope"
}

type EnvelopeDetail struct {
	Reid   int   `gorm:"column:reid;primaryKey;autoIncrement:false" json:"reid"` // 红包ID
	Uid    int   `gorm:"column:uid;primaryKey;autoIncrement:false" json:"uid"`   // 领取者ID
	Amount int64 `gorm:"column:amount;default:0;NOT NULL" json:"amount"`         // 领取金额(分)
}

func (m *EnvelopeDetail) TableName() string {
	return "envelope_detail"
}
