package service

import "errors"

var (
	ErrInvalidAmount = errors.New("红包金额必须大于0")
	ErrUserNotFound  = errors.New("用户不存在")
	ErrNoGroup       = errors.New("用户没有加入任何群")
	ErrNoMembers     = errors.New("群没有成员")
	ErrTransaction   = errors.New("事务执行失败")
)
