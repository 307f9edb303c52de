package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hongbao/internal/repository/model"
	"go-hongbao/internal/testutil"
)

func TestGraphService_Build(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()

	result, err := s.graph.Build(ctx, BuildOptions{Users: 12, Friends: 4, Groups: 2, Members: 6})
	require.NoError(t, err)
	assert.Equal(t, 12, result.Users)
	assert.Equal(t, 24, result.Groups)
	assert.Equal(t, 0, result.Failures)

	report, err := s.audit.Check(ctx)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, int64(12), report.Money.Users)
	assert.Equal(t, int64(12*testReserve), report.Money.BankBalance)

	uidRange, err := s.users.Dao().GetUidRange(ctx)
	require.NoError(t, err)

	succeeded := 0
	for uid := uidRange.MinUid; uid <= uidRange.MaxUid; uid++ {
		_, err := s.envelopes.Distribute(ctx, uid, 300)
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, ErrNoGroup), "unexpected error: %v", err)
	}
	assert.Equal(t, int64(succeeded), testutil.Count(t, s.db, &model.Envelope{}))

	report, err = s.audit.Check(ctx)
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestGraphService_BuildCancelled(t *testing.T) {
	s := newTestServices(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.graph.Build(ctx, BuildOptions{Users: 5})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Users)
}
