package config

// Prepare 构造社交关系数据配置(每个 worker)
type Prepare struct {
	Users   int   `json:"users" yaml:"users" validate:"gte=0"`     // 创建用户数
	Friends int   `json:"friends" yaml:"friends" validate:"gte=0"` // 每个用户的好友数
	Groups  int   `json:"groups" yaml:"groups" validate:"gte=0"`   // 每个用户创建的群数
	Members int   `json:"members" yaml:"members" validate:"gte=0"` // 每个群的成员数
	Reserve int64 `json:"reserve" yaml:"reserve" validate:"gt=0"`  // 银行账户初始余额(分)
}

func (p *Prepare) applyDefaults() {
	if p.Users == 0 {
		p.Users = 1000
	}
	if p.Friends == 0 {
		p.Friends = 50
	}
	if p.Groups == 0 {
		p.Groups = 5
	}
	if p.Members == 0 {
		p.Members = 100
	}
	if p.Reserve == 0 {
		p.Reserve = 10000000
	}
}

// Run 发红包压测配置(每个 worker)
type Run struct {
	SendingUsers int   `json:"sending_users" yaml:"sending_users" validate:"gte=0"` // 发红包用户数
	Envelopes    int   `json:"envelopes" yaml:"envelopes" validate:"gte=0"`         // 每个用户发红包数
	Amount       int64 `json:"amount" yaml:"amount" validate:"gt=0"`                // 红包金额(分)
}

func (r *Run) applyDefaults() {
	if r.SendingUsers == 0 {
		r.SendingUsers = 100
	}
	if r.Envelopes == 0 {
		r.Envelopes = 5
	}
	if r.Amount == 0 {
		r.Amount = 10000
	}
}

// Audit 一致性检查配置
type Audit struct {
	Spec string `json:"spec" yaml:"spec"` // 压测期间定时检查规则, 例如 "@every 30s", 为空不检查
}
