package cache

import (
	"time"
)

// TimeUntilNextRefresh は loc における次の hour 時00分までの期間を返します。
// 公表済みのレートは次の更新時刻まで変わらないため、キャッシュのTTLに使用します。
func TimeUntilNextRefresh(now time.Time, hour int, loc *time.Location) time.Duration {
	now = now.In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)

	// 今日の更新時刻が既に過ぎている場合は翌日の同時刻を使用
	if !now.Before(next) {
		next = time.Date(now.Year(), now.Month(), now.Day()+1, hour, 0, 0, 0, loc)
	}

	return next.Sub(now)
}

// UntilNextRefresh は現在時刻から TimeUntilNextRefresh を計算する TTLFunc を返します。
func UntilNextRefresh(hour int, loc *time.Location) TTLFunc {
	return func() time.Duration {
		return TimeUntilNextRefresh(time.Now(), hour, loc)
	}
}
