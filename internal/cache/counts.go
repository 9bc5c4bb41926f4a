package cache

import (
	"context"
	"strconv"
	"time"

	"car-rental/internal/worker"
)

// 儀表板計數快取的 key 與存活時間
const (
	UserCountKey = "count:users"
	CarCountKey  = "count:cars"

	countTTL = 30 * time.Second
)

// GetCount 讀取快取的計數，miss 或任何錯誤一律視為未命中
func GetCount(ctx context.Context, c Cache, key string) (int, bool) {
	if c == nil {
		return 0, false
	}
	val, err := c.Get(ctx, key).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetCount 寫入計數快取，錯誤不影響請求結果
func SetCount(ctx context.Context, c Cache, key string, count int) {
	if c == nil {
		return
	}
	c.Set(ctx, key, strconv.Itoa(count), countTTL)
}

// InvalidateAsync 透過 worker pool 非同步清除計數快取，
// 寫入請求不需等待 Redis 回應
func InvalidateAsync(c Cache, wp worker.Pool, keys ...string) {
	if c == nil || wp == nil {
		return
	}
	wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		c.Del(ctx, keys...)
	})
}
