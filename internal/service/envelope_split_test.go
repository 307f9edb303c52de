package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hongbao/internal/pkg/randutil"
)

func assertPlan(t *testing.T, plan *envelopePlan, members []int, amount int64) {
	t.Helper()

	require.NotEmpty(t, plan.Details)
	require.LessOrEqual(t, len(plan.Details), len(members))

	var (
		sum      int64
		max      int64
		bestLuck int
	)
	for i, detail := range plan.Details {
		assert.Equal(t, members[i], detail.Uid)
		assert.GreaterOrEqual(t, detail.Amount, int64(1))
		sum += detail.Amount
		if detail.Amount > max {
			max = detail.Amount
			bestLuck = detail.Uid
		}
	}

	assert.Equal(t, amount, sum)
	assert.Equal(t, max, plan.MaxMount)
	assert.Equal(t, bestLuck, plan.BestLuckUid)
}

func TestSplitEnvelope(t *testing.T) {
	members := []int{11, 12, 13}

	for seed := int64(1); seed <= 200; seed++ {
		plan := splitEnvelope(members, 100, randutil.NewRand(seed))
		assertPlan(t, plan, members, 100)
	}
}

func TestSplitEnvelope_SingleCent(t *testing.T) {
	members := []int{1, 2, 3, 4, 5}

	plan := splitEnvelope(members, 1, randutil.NewRand(7))

	require.Len(t, plan.Details, 1)
	assert.Equal(t, 1, plan.Details[0].Uid)
	assert.Equal(t, int64(1), plan.Details[0].Amount)
	assert.Equal(t, 1, plan.BestLuckUid)
	assert.Equal(t, int64(1), plan.MaxMount)
}

func TestSplitEnvelope_LastMemberTakesRemaining(t *testing.T) {
	plan := splitEnvelope([]int{9}, 500, randutil.NewRand(3))

	require.Len(t, plan.Details, 1)
	assert.Equal(t, int64(500), plan.Details[0].Amount)
	assert.Equal(t, 9, plan.BestLuckUid)
}

func TestSplitEnvelope_TieKeepsFirstMember(t *testing.T) {
	ties := 0
	for seed := int64(1); seed <= 20; seed++ {
		plan := splitEnvelope([]int{1, 2}, 2, randutil.NewRand(seed))
		if len(plan.Details) != 2 {
			continue
		}

		ties++
		assert.Equal(t, int64(1), plan.Details[0].Amount)
		assert.Equal(t, int64(1), plan.Details[1].Amount)
		assert.Equal(t, 1, plan.BestLuckUid)
		assert.Equal(t, int64(1), plan.MaxMount)
	}

	require.Greater(t, ties, 0)
}

func TestSplitEnvelope_ManyMembers(t *testing.T) {
	members := make([]int, 0, 200)
	for i := 1; i <= 200; i++ {
		members = append(members, i)
	}

	for seed := int64(1); seed <= 50; seed++ {
		plan := splitEnvelope(members, 10000, randutil.NewRand(seed))
		assertPlan(t, plan, members, 10000)
	}
}

func TestSplitEnvelope_Deterministic(t *testing.T) {
	members := []int{1, 2, 3, 4}

	a := splitEnvelope(members, 1000, randutil.NewRand(99))
	b := splitEnvelope(members, 1000, randutil.NewRand(99))

	assert.Equal(t, a, b)
}
