package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hongbao/internal/repository/dao"
	"go-hongbao/internal/repository/model"
	"go-hongbao/internal/testutil"
)

func TestGroupDao(t *testing.T) {
	db := testutil.NewDB(t)
	groups := dao.NewGroupDao(dao.NewBaseDao(db, testutil.NewLogger()))
	a := testutil.SeedUser(t, db, 0, 0)
	b := testutil.SeedUser(t, db, 0, 0)
	g1 := testutil.SeedGroup(t, db, a, a, b)
	g2 := testutil.SeedGroup(t, db, b, b)

	ids, err := groups.GroupIdsByMember(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, []int{g1, g2}, ids)

	ids, err = groups.GroupIdsByMember(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, []int{g1}, ids)

	members, err := groups.MemberIds(context.Background(), g1)
	require.NoError(t, err)
	assert.Equal(t, []int{a, b}, members)

	info, err := groups.FindById(context.Background(), g2)
	require.NoError(t, err)
	assert.Equal(t, 1, info.GroupMembers)
}

func TestEnvelopeDao_FindById(t *testing.T) {
	db := testutil.NewDB(t)
	envelopes := dao.NewEnvelopeDao(dao.NewBaseDao(db, testutil.NewLogger()))

	envelope := &model.Envelope{Uid: 1, Gid: 1, Amount: 5, BestLuckUid: 2, MaxMount: 5, PickupUsers: 1}
	require.NoError(t, db.Create(envelope).Error)
	require.NoError(t, db.Create(&model.EnvelopeDetail{Reid: envelope.Reid, Uid: 2, Amount: 5}).Error)

	found, err := envelopes.FindById(context.Background(), envelope.Reid)
	require.NoError(t, err)
	require.Len(t, found.Details, 1)
	assert.Equal(t, int64(5), found.Details[0].Amount)
}
