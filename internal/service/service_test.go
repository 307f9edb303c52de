package service

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"go-hongbao/config"
	"go-hongbao/internal/pkg/randutil"
	"go-hongbao/internal/repository/dao"
	"go-hongbao/internal/repository/model"
	"go-hongbao/internal/testutil"
)

const testReserve = 1000

type testServices struct {
	db        *gorm.DB
	users     *UserService
	groups    *GroupService
	graph     *GraphService
	envelopes *EnvelopeService
	audit     *AuditService
	cleanup   *CleanupService
}

type fakeNotifier struct {
	envelopes []*model.Envelope
	err       error
}

func (n *fakeNotifier) Notify(_ context.Context, envelope *model.Envelope) error {
	n.envelopes = append(n.envelopes, envelope)
	return n.err
}

func newTestServices(t *testing.T, notifier EnvelopeNotifier) *testServices {
	t.Helper()

	db := testutil.NewDB(t)
	conf := &config.Config{Prepare: &config.Prepare{Reserve: testReserve}}

	baseDao := dao.NewBaseDao(db, testutil.NewLogger())
	base := NewBaseService(baseDao, randutil.NewRand(42))
	usersDao := dao.NewUsersDao(baseDao)
	groupDao := dao.NewGroupDao(baseDao)

	users := NewUserService(base, usersDao, conf)
	groups := NewGroupService(base, groupDao, usersDao)

	return &testServices{
		db:        db,
		users:     users,
		groups:    groups,
		graph:     NewGraphService(base, users, groups),
		envelopes: NewEnvelopeService(base, dao.NewEnvelopeDao(baseDao), users, groupDao, notifier),
		audit:     NewAuditService(base, dao.NewAuditDao(baseDao), conf),
		cleanup:   NewCleanupService(base),
	}
}
