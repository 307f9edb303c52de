package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/GUAIK-ORG/go-snowflake/snowflake"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"go-hongbao/config"
	"go-hongbao/internal/cache"
	"go-hongbao/internal/job"
	jobcron "go-hongbao/internal/job/handle/cron"
	"go-hongbao/internal/pkg/jsonutil"
	"go-hongbao/internal/pkg/logger"
	"go-hongbao/internal/provider"
	"go-hongbao/internal/service"
	"go-hongbao/internal/workload"
)

// Output 命令执行结果, 以 JSON 输出到标准输出
type Output struct {
	RunId     string               `json:"run_id"`
	Summary   *workload.Summary    `json:"summary,omitempty"`
	Audit     *service.AuditReport `json:"audit,omitempty"`
	AuditRuns int                  `json:"audit_runs,omitempty"`
	AuditFail int                  `json:"audit_failed,omitempty"`
	Deleted   map[string]int64     `json:"deleted,omitempty"`
}

type command struct {
	conf  *config.Config
	log   logrus.FieldLogger
	runId string
	opts  WorkerOptions
}

func newCommand(c *cli.Context) (*command, func(), error) {
	conf, err := config.ReadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}

	if c.IsSet("workers") {
		conf.App.Workers = c.Int("workers")
	}
	if c.IsSet("log-level") {
		conf.Log.Level = c.String("log-level")
	}

	log, cleanup, err := logger.New(conf.Log, logger.WorkerName(conf.App.Name, -1))
	if err != nil {
		return nil, nil, err
	}

	runId := newRunId()

	cmd := &command{
		conf:  conf,
		log:   log.WithFields(logrus.Fields{"run_id": runId, "command": c.Command.Name}),
		runId: runId,
		opts:  WorkerOptions{Index: -1, Server: c.String("server"), Seed: c.Int64("seed")},
	}

	return cmd, cleanup, nil
}

func newRunId() string {
	sn, err := snowflake.NewSnowflake(int64(0), int64(0))
	if err != nil {
		return "0"
	}

	return strconv.FormatInt(sn.NextVal(), 10)
}

func (cmd *command) maintainer(ctx context.Context) (*Maintainer, func(), error) {
	opts := cmd.opts
	return initMaintainer(ctx, cmd.conf, &opts)
}

func (cmd *command) runner() *workload.Runner {
	return workload.NewRunner(cmd.conf.App.Workers, func(ctx context.Context, index int) (*workload.Worker, func(), error) {
		opts := cmd.opts
		opts.Index = index
		return initWorker(ctx, cmd.conf, &opts)
	}, cmd.log)
}

// saveStats 写入 Redis 失败只记录日志
func (cmd *command) saveStats(ctx context.Context, summary *workload.Summary) {
	if !cmd.conf.Redis.Enabled() {
		return
	}

	rds, cleanup, err := provider.NewRedisClient(ctx, cmd.conf)
	if err != nil {
		cmd.log.WithError(err).Warn("save run stats skipped")
		return
	}
	defer cleanup()

	stats := cache.NewRunStatsCache(rds)
	for _, tally := range summary.Workers {
		if err := stats.Incr(ctx, cmd.runId, summary.Phase, tally.Worker, int64(tally.Succeeded), int64(tally.Failed)); err != nil {
			cmd.log.WithError(err).Warn("save run stats failed")
			return
		}
	}
}

func (cmd *command) print(c *cli.Context, output *Output) error {
	output.RunId = cmd.runId

	data, err := jsonutil.MarshalIndent(output)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}

func prepareAction(c *cli.Context) error {
	cmd, cleanup, err := newCommand(c)
	if err != nil {
		return err
	}
	defer cleanup()

	if c.Bool("migrate") {
		if err := migrate(c.Context, cmd); err != nil {
			return err
		}
	}

	opts := workload.PrepareOptions{
		Users:   cmd.conf.Prepare.Users,
		Friends: cmd.conf.Prepare.Friends,
		Groups:  cmd.conf.Prepare.Groups,
		Members: cmd.conf.Prepare.Members,
	}
	if c.IsSet("users") {
		opts.Users = c.Int("users")
	}
	if c.IsSet("friends") {
		opts.Friends = c.Int("friends")
	}
	if c.IsSet("groups") {
		opts.Groups = c.Int("groups")
	}
	if c.IsSet("members") {
		opts.Members = c.Int("members")
	}

	summary, err := cmd.runner().Run(c.Context, "prepare", workload.PreparePhase(opts))
	if err != nil {
		return err
	}

	cmd.saveStats(c.Context, summary)

	return cmd.print(c, &Output{Summary: summary})
}

func runAction(c *cli.Context) error {
	cmd, cleanup, err := newCommand(c)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := workload.RunOptions{
		SendingUsers: cmd.conf.Run.SendingUsers,
		Envelopes:    cmd.conf.Run.Envelopes,
		Amount:       cmd.conf.Run.Amount,
	}
	if c.IsSet("sending-users") {
		opts.SendingUsers = c.Int("sending-users")
	}
	if c.IsSet("envelopes") {
		opts.Envelopes = c.Int("envelopes")
	}
	if c.IsSet("amount") {
		opts.Amount = c.Int64("amount")
	}

	spec := cmd.conf.Audit.Spec
	if c.IsSet("audit-spec") {
		spec = c.String("audit-spec")
	}

	output := &Output{}
	stopAudit := func() {}

	if spec != "" {
		maintainer, closeMaintainer, err := cmd.maintainer(c.Context)
		if err != nil {
			return err
		}
		defer closeMaintainer()

		handle := jobcron.NewAuditHandle(maintainer.Audit, spec)
		crontab, err := job.NewCrontab(cmd.log, handle)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(c.Context)
		done := make(chan struct{})
		go func() {
			crontab.Start(ctx)
			close(done)
		}()

		stopAudit = func() {
			cancel()
			<-done
			output.AuditRuns, output.AuditFail = handle.Runs()
			output.Audit = handle.LastReport()
		}
	}

	summary, err := cmd.runner().Run(c.Context, "run", workload.RunPhase(opts))
	stopAudit()
	if err != nil {
		return err
	}

	cmd.saveStats(c.Context, summary)
	output.Summary = summary

	return cmd.print(c, output)
}

func cleanupAction(c *cli.Context) error {
	cmd, cleanup, err := newCommand(c)
	if err != nil {
		return err
	}
	defer cleanup()

	maintainer, closeMaintainer, err := cmd.maintainer(c.Context)
	if err != nil {
		return err
	}
	defer closeMaintainer()

	deleted, err := maintainer.Cleanup.Clear(c.Context)
	if err != nil {
		return err
	}

	return cmd.print(c, &Output{Deleted: deleted})
}

func auditAction(c *cli.Context) error {
	cmd, cleanup, err := newCommand(c)
	if err != nil {
		return err
	}
	defer cleanup()

	maintainer, closeMaintainer, err := cmd.maintainer(c.Context)
	if err != nil {
		return err
	}
	defer closeMaintainer()

	report, err := maintainer.Audit.Check(c.Context)
	if err != nil {
		return err
	}

	if err := cmd.print(c, &Output{Audit: report}); err != nil {
		return err
	}

	if !report.OK() {
		return cli.Exit("audit failed", 2)
	}

	return nil
}

func migrateAction(c *cli.Context) error {
	cmd, cleanup, err := newCommand(c)
	if err != nil {
		return err
	}
	defer cleanup()

	return migrate(c.Context, cmd)
}

func migrate(ctx context.Context, cmd *command) error {
	maintainer, closeMaintainer, err := cmd.maintainer(ctx)
	if err != nil {
		return err
	}
	defer closeMaintainer()

	return maintainer.Schema.Migrate(ctx)
}
