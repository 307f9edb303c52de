package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRowsAffected = errors.New("影响行数不符")

// Statement 参数化 SQL 语句
type Statement struct {
	Sql  string
	Args []interface{}
	Rows int64 // 期望影响行数, 0 表示不校验
}

func Stmt(sql string, args ...interface{}) Statement {
	return Statement{Sql: sql, Args: args}
}

// Affects 要求语句恰好影响 rows 行
func (s Statement) Affects(rows int64) Statement {
	s.Rows = rows
	return s
}

// BaseDao 单个 worker 持有的数据库访问对象
type BaseDao struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewBaseDao(db *gorm.DB, log logrus.FieldLogger) *BaseDao {
	return &BaseDao{db: db, log: log}
}

func (dao *BaseDao) Db() *gorm.DB {
	return dao.db
}

func (dao *BaseDao) Logger() logrus.FieldLogger {
	return dao.log
}

// QueryOne 查询单条记录, 记录不存在时 found 为 false
func (dao *BaseDao) QueryOne(ctx context.Context, dest interface{}, sql string, args ...interface{}) (bool, error) {
	tx := dao.db.WithContext(ctx).Raw(sql, args...).Scan(dest)
	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected > 0, nil
}

// QueryMany 查询多条记录
func (dao *BaseDao) QueryMany(ctx context.Context, dest interface{}, sql string, args ...interface{}) error {
	return dao.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error
}

// Begin 开启事务, 由调用方 Commit 或 Rollback
func (dao *BaseDao) Begin(ctx context.Context) *gorm.DB {
	return dao.db.WithContext(ctx).Begin()
}

// Transaction 在事务中执行 fn, 返回错误或 panic 时回滚
func (dao *BaseDao) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return dao.db.WithContext(ctx).Transaction(fn)
}

// ExecuteAtomic 在同一事务中执行所有语句
// 任意语句失败则整体回滚并返回 false, 错误只记录日志不向上抛出
func (dao *BaseDao) ExecuteAtomic(ctx context.Context, stmts ...Statement) bool {
	if len(stmts) == 0 {
		return false
	}

	err := dao.Transaction(ctx, func(tx *gorm.DB) error {
		for i, stmt := range stmts {
			res := tx.Exec(stmt.Sql, stmt.Args...)
			if res.Error != nil {
				return fmt.Errorf("statement %d [%s]: %w", i, stmt.Sql, res.Error)
			}

			if stmt.Rows > 0 && res.RowsAffected != stmt.Rows {
				return fmt.Errorf("statement %d [%s]: %w: %d", i, stmt.Sql, ErrRowsAffected, res.RowsAffected)
			}
		}
		return nil
	})

	if err != nil {
		dao.log.WithError(err).WithField("statements", len(stmts)).Error("atomic execute rollback")
		return false
	}

	return true
}
