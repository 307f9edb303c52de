package model

// All 所有数据表模型, 按依赖顺序排列
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserBank{},
		&UserFriends{},
		&Group{},
		&GroupMember{},
		&Envelope{},
		&EnvelopeDetail{},
	}
}
