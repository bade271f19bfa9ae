package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Limiter は外部API呼び出しの頻度を制限するインターフェースです。
type Limiter interface {
	// Wait は呼び出しが許可されるまでブロックします。ctx がキャンセルされた場合はそのエラーを返します。
	Wait(ctx context.Context) error
}

// RateLimiter は固定ウィンドウ方式で interval あたり limit 回までの呼び出しを許可します。
// 複数のgoroutineから安全に利用できます。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // ウィンドウあたりの上限
	interval  time.Duration // ウィンドウの長さ
	count     int
	lastReset time.Time
	now       func() time.Time
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit が0以下の場合は制限なしとして扱います。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
	}
}

// Wait は上限に達している場合、予約した枠のウィンドウが始まるまで待機します。
// 枠の予約だけをロック内で行い、待機はロックの外で行うため、
// 待機中の呼び出しが他の呼び出しの ctx キャンセルを妨げることはありません。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.limit <= 0 {
		return ctx.Err()
	}

	rl.mu.Lock()
	now := rl.now()
	// 経過したウィンドウを進める。将来の予約が残っていればその分だけずらす
	for now.Sub(rl.lastReset) >= rl.interval {
		if rl.count <= rl.limit {
			rl.count = 0
			rl.lastReset = now
			break
		}
		rl.lastReset = rl.lastReset.Add(rl.interval)
		rl.count -= rl.limit
	}

	slot := rl.count
	rl.count++
	window := rl.lastReset
	start := window.Add(time.Duration(slot/rl.limit) * rl.interval)
	rl.mu.Unlock()

	sleep := start.Sub(now)
	if sleep <= 0 {
		return ctx.Err()
	}

	slog.Warn("rate limit reached, waiting", "limit", rl.limit, "sleep", sleep)
	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		rl.release(window, slot)
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// release は最後の予約であれば枠を返却します。
func (rl *RateLimiter) release(window time.Time, slot int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.lastReset.Equal(window) && rl.count == slot+1 {
		rl.count--
	}
}
