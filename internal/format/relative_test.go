package format

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestAgeBuckets(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		suffix  bool
		want    string
	}{
		{"seconds", 45 * time.Second, true, "45 seconds ago"},
		{"just under a minute", 59 * time.Second, true, "59 seconds ago"},
		{"exactly one minute", 60 * time.Second, true, "1 minutes ago"},
		{"floors not rounds", 125 * time.Second, true, "2 minutes ago"},
		{"just under an hour", 59 * time.Minute, true, "59 minutes ago"},
		{"hours", 90 * time.Minute, true, "1 hours ago"},
		{"just under a day", 23 * time.Hour, true, "23 hours ago"},
		{"days", 49 * time.Hour, true, "2 days ago"},
		{"just under a month", 29 * 24 * time.Hour, true, "29 days ago"},
		{"months", 65 * 24 * time.Hour, true, "2 months ago"},
		{"just under a year", 359 * 24 * time.Hour, true, "11 months ago"},
		{"years", 800 * 24 * time.Hour, true, "2 years ago"},
		{"no suffix", 125 * time.Second, false, "2 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ageAt(now, now.Add(-tt.elapsed), tt.suffix)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgeBucketProperties(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	properties := gopter.NewProperties(nil)

	// The bucket value is always the floored quotient of its divisor chain,
	// so it never exceeds the raw elapsed seconds.
	properties.Property("suffix form always ends in ago", prop.ForAll(
		func(seconds int64) bool {
			out := ageAt(now, now.Add(-time.Duration(seconds)*time.Second), true)
			return len(out) > 4 && out[len(out)-4:] == " ago"
		},
		gen.Int64Range(0, 100*365*24*3600),
	))

	// Each unit only ever shows values below its bucket threshold; anything
	// larger rolls over into the coarser unit.
	properties.Property("value stays below the unit threshold", prop.ForAll(
		func(seconds int64) bool {
			out := ageAt(now, now.Add(-time.Duration(seconds)*time.Second), false)
			var value int64
			var unit string
			if _, err := fmt.Sscanf(out, "%d %s", &value, &unit); err != nil {
				return false
			}
			limits := map[string]int64{"seconds": 60, "minutes": 60, "hours": 24, "days": 30, "months": 12}
			limit, bounded := limits[unit]
			if !bounded {
				return unit == "years" && value >= 1
			}
			return value >= 0 && value < limit
		},
		gen.Int64Range(0, 100*365*24*3600),
	))

	properties.TestingRun(t)
}
