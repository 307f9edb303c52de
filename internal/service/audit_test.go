package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-hongbao/internal/repository/model"
	"go-hongbao/internal/testutil"
)

func TestAuditService_Check(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()

	sender := testutil.SeedUser(t, s.db, 0, testReserve)
	a := testutil.SeedUser(t, s.db, 0, testReserve)
	testutil.SeedGroup(t, s.db, sender, sender, a)

	for i := 0; i < 5; i++ {
		_, err := s.envelopes.Distribute(ctx, sender, 70)
		require.NoError(t, err)
	}

	report, err := s.audit.Check(ctx)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, int64(2*testReserve), report.ExpectedMoney)

	// 绕过服务直接修改余额, 资金不再守恒
	require.NoError(t, s.db.Model(&model.User{}).Where("uid = ?", a).Update("balance", gorm.Expr("balance + 1")).Error)
	require.NoError(t, s.db.Model(&model.Envelope{}).Where("1 = 1").Update("max_mount", 0).Error)

	report, err = s.audit.Check(ctx)
	require.NoError(t, err)
	assert.False(t, report.MoneyConserved())
	assert.Len(t, report.BestLuckMismatches, 5)
	assert.False(t, report.OK())
}
