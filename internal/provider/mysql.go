package provider

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"go-hongbao/config"
)

// MySQLClient 单个 worker 使用的数据库连接
type MySQLClient struct {
	Name   string
	Server *config.MySQL
	DB     *gorm.DB
}

// NewMySQLClient 按配置选择服务器并建立连接
// server 为空时随机选择, 每个客户端只持有一个连接
func NewMySQLClient(ctx context.Context, conf *config.Config, server string, rnd *rand.Rand, log logrus.FieldLogger) (*MySQLClient, func(), error) {
	name, source, err := conf.PickMySQL(rnd, server)
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(mysql.Open(source.GetDsn()), &gorm.Config{
		Logger:                 NewGormLogger(log, conf.Debug() || source.GeneralLog),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("mysql [%s] connect: %w", name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if replicas := conf.ReplicasOf(source); len(replicas) > 0 {
		dialectors := make([]gorm.Dialector, 0, len(replicas))
		for _, replica := range replicas {
			dialectors = append(dialectors, mysql.Open(replica.GetDsn()))
		}

		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: dialectors,
			Policy:   dbresolver.RandomPolicy{},
		}).SetMaxOpenConns(1).SetMaxIdleConns(1)

		if err := db.Use(resolver); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("mysql [%s] register replicas: %w", name, err)
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("mysql [%s] ping: %w", name, err)
	}

	if source.GeneralLog {
		if err := setGeneralLog(ctx, db, true); err != nil {
			log.WithError(err).Warn("enable general_log failed")
		}
	}

	log.WithFields(logrus.Fields{"server": name, "addr": source.Addr()}).Info("mysql connected")

	client := &MySQLClient{Name: name, Server: source, DB: db}

	return client, func() {
		if source.GeneralLog {
			if err := setGeneralLog(context.Background(), db, false); err != nil {
				log.WithError(err).Warn("disable general_log failed")
			}
		}
		_ = sqlDB.Close()
	}, nil
}

func setGeneralLog(ctx context.Context, db *gorm.DB, on bool) error {
	value := 0
	if on {
		value = 1
	}

	return db.WithContext(ctx).Exec(fmt.Sprintf("SET GLOBAL general_log = %d", value)).Error
}

// NewGormLogger 将 gorm 日志写入 logrus, verbose 时记录全部 SQL
func NewGormLogger(log logrus.FieldLogger, verbose bool) gormlogger.Interface {
	level := gormlogger.Warn
	if verbose {
		level = gormlogger.Info
	}

	return gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
