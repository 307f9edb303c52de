package service

import (
	"math/rand"

	"go-hongbao/internal/repository/model"
)

// envelopePlan 红包拆分结果, 明细按发放顺序排列
type envelopePlan struct {
	Details     []*model.EnvelopeDetail
	BestLuckUid int
	MaxMount    int64
}

// splitEnvelope 按成员顺序拆分红包金额
// 除最后一人外每人在 [1, 剩余金额] 中随机领取, 最后一人领取全部剩余, 金额领完即停止
// 手气最佳取第一个达到最大金额的成员
func splitEnvelope(members []int, amount int64, rnd *rand.Rand) *envelopePlan {
	plan := &envelopePlan{Details: make([]*model.EnvelopeDetail, 0, len(members))}

	remaining := amount
	for i, uid := range members {
		if remaining <= 0 {
			break
		}

		share := remaining
		if i < len(members)-1 {
			share = rnd.Int63n(remaining) + 1
		}
		remaining -= share

		if share > plan.MaxMount {
			plan.MaxMount = share
			plan.BestLuckUid = uid
		}

		plan.Details = append(plan.Details, &model.EnvelopeDetail{Uid: uid, Amount: share})
	}

	return plan
}
