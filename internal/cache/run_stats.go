package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const runStatsExpire = 7 * 24 * time.Hour

// RunStatsCache 压测结果统计, 每次运行一个 hash
type RunStatsCache struct {
	rds *redis.Client
}

func NewRunStatsCache(rds *redis.Client) *RunStatsCache {
	return &RunStatsCache{rds}
}

func (c *RunStatsCache) name(runId string) string {
	return fmt.Sprintf("hongbao:run:%s", runId)
}

func (c *RunStatsCache) field(phase string, worker int, result string) string {
	return fmt.Sprintf("%s:%d:%s", phase, worker, result)
}

// Incr 累加 worker 的成功失败次数
// @params runId  运行ID
// @params phase  prepare / run
// @params worker worker 编号
func (c *RunStatsCache) Incr(ctx context.Context, runId, phase string, worker int, succeeded, failed int64) error {
	name := c.name(runId)

	_, err := c.rds.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, name, c.field(phase, worker, "succeeded"), succeeded)
		pipe.HIncrBy(ctx, name, c.field(phase, worker, "failed"), failed)
		pipe.Expire(ctx, name, runStatsExpire)
		return nil
	})

	return err
}

// Get 获取单个 worker 的统计
func (c *RunStatsCache) Get(ctx context.Context, runId, phase string, worker int) (int64, int64) {
	values := c.rds.HMGet(ctx, c.name(runId), c.field(phase, worker, "succeeded"), c.field(phase, worker, "failed")).Val()

	result := make([]int64, 2)
	for i, v := range values {
		if s, ok := v.(string); ok {
			result[i], _ = strconv.ParseInt(s, 10, 64)
		}
	}

	return result[0], result[1]
}

// Totals 汇总某个阶段所有 worker 的统计
func (c *RunStatsCache) Totals(ctx context.Context, runId, phase string) (int64, int64, error) {
	items, err := c.rds.HGetAll(ctx, c.name(runId)).Result()
	if err != nil {
		return 0, 0, err
	}

	var succeeded, failed int64
	for k, v := range items {
		if !strings.HasPrefix(k, phase+":") {
			continue
		}

		n, _ := strconv.ParseInt(v, 10, 64)
		switch {
		case strings.HasSuffix(k, ":succeeded"):
			succeeded += n
		case strings.HasSuffix(k, ":failed"):
			failed += n
		}
	}

	return succeeded, failed, nil
}
