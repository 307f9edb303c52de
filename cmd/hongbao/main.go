package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		stop()
		logrus.WithError(err).Fatal("hongbao exit")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "hongbao",
		Usage: "红包事务一致性压测工具",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "./config.yaml", Usage: "配置文件路径"},
			&cli.StringFlag{Name: "server", Aliases: []string{"s"}, Usage: "MySQL 配置名称, 不指定时每个 worker 随机选择"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "并发 worker 数"},
			&cli.StringFlag{Name: "log-level", Usage: "日志级别 debug/info/warn/error"},
			&cli.Int64Flag{Name: "seed", Usage: "随机数种子, 0 表示使用当前时间"},
		},
		Commands: []*cli.Command{
			{
				Name:  "prepare",
				Usage: "构造用户、好友和群数据",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "users", Usage: "每个 worker 创建的用户数"},
					&cli.IntFlag{Name: "friends", Usage: "每个用户添加的好友数"},
					&cli.IntFlag{Name: "groups", Usage: "每个用户创建的群数"},
					&cli.IntFlag{Name: "members", Usage: "每个群的成员数"},
					&cli.BoolFlag{Name: "migrate", Usage: "构造数据前先创建表结构"},
				},
				Action: prepareAction,
			},
			{
				Name:  "run",
				Usage: "并发发红包",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "sending-users", Usage: "每个 worker 的发红包用户数"},
					&cli.IntFlag{Name: "envelopes", Usage: "每个用户发红包数"},
					&cli.Int64Flag{Name: "amount", Usage: "红包金额(分)"},
					&cli.StringFlag{Name: "audit-spec", Usage: "压测期间定时检查规则, 例如 @every 30s"},
				},
				Action: runAction,
			},
			{
				Name:   "cleanup",
				Usage:  "删除所有表数据",
				Action: cleanupAction,
			},
			{
				Name:   "audit",
				Usage:  "检查数据一致性",
				Action: auditAction,
			},
			{
				Name:   "migrate",
				Usage:  "创建表结构",
				Action: migrateAction,
			},
		},
	}
}
