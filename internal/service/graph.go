package service

import (
	"context"

	"github.com/sirupsen/logrus"
)

// BuildOptions 单个 worker 构造社交关系的数量配置
type BuildOptions struct {
	Users   int
	Friends int
	Groups  int
	Members int
}

// BuildResult 构造结果统计
type BuildResult struct {
	Users    int `json:"users"`
	Friends  int `json:"friends"`
	Groups   int `json:"groups"`
	Failures int `json:"failures"`
}

type GraphService struct {
	*BaseService
	users  *UserService
	groups *GroupService
}

func NewGraphService(baseService *BaseService, users *UserService, groups *GroupService) *GraphService {
	return &GraphService{BaseService: baseService, users: users, groups: groups}
}

// Build 创建用户, 再为这些用户添加好友和建群
// 单个操作失败只计数不中断, 只有 ctx 取消时提前返回
func (s *GraphService) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	result := &BuildResult{}
	uids := make([]int, 0, opts.Users)

	for i := 0; i < opts.Users; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		uid, err := s.users.CreateUser(ctx)
		if err != nil {
			result.Failures++
			continue
		}

		uids = append(uids, uid)
		result.Users++
	}

	for _, uid := range uids {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		n, err := s.users.CreateFriends(ctx, uid, opts.Friends)
		if err != nil {
			s.Logger().WithField("uid", uid).WithError(err).Warn("create friends skipped")
			result.Failures++
			continue
		}

		result.Friends += n
	}

	for _, uid := range uids {
		for i := 0; i < opts.Groups; i++ {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			if _, err := s.groups.CreateGroup(ctx, uid, opts.Members); err != nil {
				s.Logger().WithField("uid", uid).WithError(err).Warn("create group skipped")
				result.Failures++
				continue
			}

			result.Groups++
		}
	}

	s.Logger().WithFields(logrus.Fields{
		"users":    result.Users,
		"friends":  result.Friends,
		"groups":   result.Groups,
		"failures": result.Failures,
	}).Info("social graph prepared")

	return result, nil
}
