package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-hongbao/internal/repository/model"
	"go-hongbao/internal/testutil"
)

func TestEnvelopeService_Distribute(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newTestServices(t, notifier)
	ctx := context.Background()

	sender := testutil.SeedUser(t, s.db, 0, testReserve)
	a := testutil.SeedUser(t, s.db, 0, testReserve)
	b := testutil.SeedUser(t, s.db, 0, testReserve)
	gid := testutil.SeedGroup(t, s.db, sender, sender, a, b)

	envelope, err := s.envelopes.Distribute(ctx, sender, 100)
	require.NoError(t, err)

	assert.Equal(t, sender, envelope.Uid)
	assert.Equal(t, gid, envelope.Gid)
	assert.Equal(t, int64(100), envelope.Amount)
	assert.Equal(t, len(envelope.Details), envelope.PickupUsers)

	stored, err := s.envelopes.Dao().FindById(ctx, envelope.Reid)
	require.NoError(t, err)
	assert.Equal(t, envelope.BestLuckUid, stored.BestLuckUid)
	assert.Equal(t, envelope.MaxMount, stored.MaxMount)
	assert.Equal(t, envelope.PickupUsers, stored.PickupUsers)

	var sum int64
	for _, detail := range stored.Details {
		sum += detail.Amount
		assert.Contains(t, []int{sender, a, b}, detail.Uid)
	}
	assert.Equal(t, int64(100), sum)

	// 余额不足时从银行账户充值
	assert.Equal(t, int64(testReserve-100), testutil.BankBalance(t, s.db, sender))

	report, err := s.audit.Check(ctx)
	require.NoError(t, err)
	assert.True(t, report.OK())

	require.Len(t, notifier.envelopes, 1)
	assert.Equal(t, envelope.Reid, notifier.envelopes[0].Reid)
}

func TestEnvelopeService_DistributeSingleCent(t *testing.T) {
	s := newTestServices(t, nil)

	sender := testutil.SeedUser(t, s.db, 10, testReserve)
	members := []int{sender}
	for i := 0; i < 4; i++ {
		members = append(members, testutil.SeedUser(t, s.db, 0, testReserve))
	}
	testutil.SeedGroup(t, s.db, sender, members...)

	envelope, err := s.envelopes.Distribute(context.Background(), sender, 1)
	require.NoError(t, err)

	require.Len(t, envelope.Details, 1)
	assert.Equal(t, 1, envelope.PickupUsers)
	assert.Equal(t, int64(1), envelope.MaxMount)
	assert.Equal(t, envelope.Details[0].Uid, envelope.BestLuckUid)

	// 余额充足时不充值
	assert.Equal(t, int64(testReserve), testutil.BankBalance(t, s.db, sender))
}

func TestEnvelopeService_DistributeWithoutGroup(t *testing.T) {
	s := newTestServices(t, nil)
	sender := testutil.SeedUser(t, s.db, 500, testReserve)

	_, err := s.envelopes.Distribute(context.Background(), sender, 100)
	assert.ErrorIs(t, err, ErrNoGroup)

	assert.Equal(t, int64(0), testutil.Count(t, s.db, &model.Envelope{}))
	assert.Equal(t, int64(0), testutil.Count(t, s.db, &model.EnvelopeDetail{}))
	assert.Equal(t, int64(500), testutil.Balance(t, s.db, sender))
}

func TestEnvelopeService_DistributeUnknownUser(t *testing.T) {
	s := newTestServices(t, nil)

	_, err := s.envelopes.Distribute(context.Background(), 12345, 100)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.envelopes.Distribute(context.Background(), 12345, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestEnvelopeService_DistributeRollback(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()

	sender := testutil.SeedUser(t, s.db, 0, testReserve)
	a := testutil.SeedUser(t, s.db, 0, testReserve)
	testutil.SeedGroup(t, s.db, sender, sender, a)

	injected := errors.New("injected failure")
	err := s.db.Callback().Create().Before("gorm:create").Register("test:fail_detail", func(tx *gorm.DB) {
		if tx.Statement.Table == "envelope_detail" {
			_ = tx.AddError(injected)
		}
	})
	require.NoError(t, err)

	_, err = s.envelopes.Distribute(ctx, sender, 100)
	assert.ErrorIs(t, err, ErrTransaction)
	assert.ErrorIs(t, err, injected)

	assert.Equal(t, int64(0), testutil.Count(t, s.db, &model.Envelope{}))
	assert.Equal(t, int64(0), testutil.Count(t, s.db, &model.EnvelopeDetail{}))

	// 充值单独提交, 不随红包事务回滚
	assert.Equal(t, int64(100), testutil.Balance(t, s.db, sender))
	assert.Equal(t, int64(testReserve-100), testutil.BankBalance(t, s.db, sender))
	assert.Equal(t, int64(0), testutil.Balance(t, s.db, a))

	report, err := s.audit.Check(ctx)
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestEnvelopeService_NotifyFailureKeepsEnvelope(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("broker down")}
	s := newTestServices(t, notifier)

	sender := testutil.SeedUser(t, s.db, 0, testReserve)
	testutil.SeedGroup(t, s.db, sender, sender)

	envelope, err := s.envelopes.Distribute(context.Background(), sender, 50)
	require.NoError(t, err)
	assert.Equal(t, sender, envelope.BestLuckUid)
	assert.Equal(t, int64(1), testutil.Count(t, s.db, &model.Envelope{}))
	assert.Len(t, notifier.envelopes, 1)

	// 自己发给自己, 余额不变
	assert.Equal(t, int64(50), testutil.Balance(t, s.db, sender))
}
