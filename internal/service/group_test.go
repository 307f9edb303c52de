package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hongbao/internal/repository/model"
	"go-hongbao/internal/testutil"
)

func TestGroupService_CreateGroup(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()

	a := testutil.SeedUser(t, s.db, 0, testReserve)
	b := testutil.SeedUser(t, s.db, 0, testReserve)
	c := testutil.SeedUser(t, s.db, 0, testReserve)
	testutil.SeedFriends(t, s.db, a, b)
	testutil.SeedFriends(t, s.db, b, c)

	// 两度好友集合为 {a, b, c}, 成员数被截断为 3
	group, err := s.groups.CreateGroup(ctx, a, 10)
	require.NoError(t, err)
	assert.Equal(t, a, group.CreateUid)
	assert.Equal(t, 3, group.GroupMembers)
	assert.NotEmpty(t, group.Gname)

	members, err := s.groups.Dao().MemberIds(ctx, group.Gid)
	require.NoError(t, err)
	assert.Equal(t, []int{a, b, c}, members)

	group, err = s.groups.CreateGroup(ctx, a, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, group.GroupMembers)

	members, err = s.groups.Dao().MemberIds(ctx, group.Gid)
	require.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Subset(t, []int{a, b, c}, members)

	report, err := s.audit.Check(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.MemberCounterMismatches)
}

func TestGroupService_CreateGroupWithoutFriends(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()
	uid := testutil.SeedUser(t, s.db, 0, testReserve)

	group, err := s.groups.CreateGroup(ctx, uid, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, group.GroupMembers)
	assert.Equal(t, int64(0), testutil.Count(t, s.db, &model.GroupMember{}))

	_, err = s.groups.CreateGroup(ctx, uid+1, 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
