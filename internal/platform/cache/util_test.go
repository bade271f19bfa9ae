package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeUntilNextRefresh(t *testing.T) {
	t.Parallel()

	sp := time.FixedZone("BRT", -3*60*60)
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{name: "before refresh hour", now: time.Date(2024, 1, 8, 9, 30, 0, 0, sp), want: 7*time.Hour + 30*time.Minute},
		{name: "exactly at refresh hour", now: time.Date(2024, 1, 8, 17, 0, 0, 0, sp), want: 24 * time.Hour},
		{name: "after refresh hour", now: time.Date(2024, 1, 8, 20, 0, 0, 0, sp), want: 21 * time.Hour},
		{name: "now in another zone", now: time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC), want: 8 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TimeUntilNextRefresh(tt.now, 17, sp))
		})
	}
}

func TestUntilNextRefresh_AlwaysPositive(t *testing.T) {
	t.Parallel()

	ttl := UntilNextRefresh(8, time.UTC)
	for i := 0; i < 10; i++ {
		d := ttl()
		assert.Greater(t, d, time.Duration(0))
		assert.LessOrEqual(t, d, 24*time.Hour)
	}
}
