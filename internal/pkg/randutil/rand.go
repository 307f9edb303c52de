// Package randutil 生成压测用的随机数据
package randutil

import (
	"fmt"
	"math/rand"
	"time"
)

var (
	birthStart = time.Date(1976, 1, 1, 0, 0, 0, 0, time.Local)
	birthEnd   = time.Date(2017, 12, 31, 23, 59, 59, 0, time.Local)
)

// NewRand 每个 worker 独立的随机数源
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Uname 随机产生用户名称
func Uname(r *rand.Rand) string {
	return randomName(r, "abceefg")
}

// Gname 随机产生群名称
func Gname(r *rand.Rand) string {
	return randomName(r, "ABCDEFG")
}

func randomName(r *rand.Rand, letters string) string {
	buf := make([]byte, 3)
	for i := range buf {
		buf[i] = letters[r.Intn(len(letters))]
	}
	return fmt.Sprintf("%s%d", buf, r.Int63n(9000000001))
}

// BirthDay 随机产生生日
func BirthDay(r *rand.Rand) time.Time {
	sec := birthStart.Unix() + r.Int63n(birthEnd.Unix()-birthStart.Unix()+1)
	t := time.Unix(sec, 0).In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Province 随机省份id
func Province(r *rand.Rand) int {
	return r.Intn(34) + 1
}

// City 随机城市id
func City(r *rand.Rand) int {
	return r.Intn(340) + 1
}

// Between 返回 [min, max] 区间的随机整数
func Between(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Sample 不放回地随机选取 n 个元素, n 超过元素个数时返回全部元素(打乱顺序)
func Sample(r *rand.Rand, items []int, n int) []int {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return []int{}
	}

	pool := make([]int, len(items))
	copy(pool, items)
	for i := 0; i < n; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n]
}

// Unique 去重并保持首次出现的顺序
func Unique(items []int) []int {
	seen := make(map[int]struct{}, len(items))
	result := make([]int, 0, len(items))
	for _, v := range items {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
