package cron

import (
	"context"
	"errors"

	"go-hongbao/internal/service"
)

var ErrAuditFailed = errors.New("数据一致性检查未通过")

type AuditHandle struct {
	audit  *service.AuditService
	spec   string
	runs   int
	failed int
	last   *service.AuditReport
}

func NewAuditHandle(audit *service.AuditService, spec string) *AuditHandle {
	return &AuditHandle{audit: audit, spec: spec}
}

func (c *AuditHandle) GetServiceName() string {
	return "AuditHandle"
}

// Spec 配置定时任务规则, 例如 "@every 30s"
func (c *AuditHandle) Spec() string {
	return c.spec
}

func (c *AuditHandle) Handle(ctx context.Context) error {
	c.runs++

	report, err := c.audit.Check(ctx)
	if err != nil {
		c.failed++
		return err
	}

	c.last = report
	if !report.OK() {
		c.failed++
		return ErrAuditFailed
	}

	return nil
}

// Runs 执行次数和失败次数
func (c *AuditHandle) Runs() (int, int) {
	return c.runs, c.failed
}

// LastReport 最近一次检查结果
func (c *AuditHandle) LastReport() *service.AuditReport {
	return c.last
}
