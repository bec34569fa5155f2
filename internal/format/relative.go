// Package format renders timestamps as coarse human-readable ages.
package format

import (
	"fmt"
	"time"
)

// Age formats how long ago date was, relative to the current time, appending
// " ago" when addSuffix is set. Elapsed time is bucketed with fixed divisors
// (60 seconds, 60 minutes, 24 hours, 30 days, 12 months) and always floored,
// never rounded, so 125 seconds reads as "2 minutes".
func Age(date time.Time, addSuffix bool) string {
	return ageAt(time.Now(), date, addSuffix)
}

// ageAt is the pure core, split out so tests can pin "now".
func ageAt(now, date time.Time, addSuffix bool) string {
	seconds := int64(now.Sub(date).Seconds())

	value, unit := seconds, "seconds"
	if minutes := seconds / 60; minutes >= 1 {
		value, unit = minutes, "minutes"
		if hours := minutes / 60; hours >= 1 {
			value, unit = hours, "hours"
			if days := hours / 24; days >= 1 {
				value, unit = days, "days"
				if months := days / 30; months >= 1 {
					value, unit = months, "months"
					if years := months / 12; years >= 1 {
						value, unit = years, "years"
					}
				}
			}
		}
	}

	if addSuffix {
		return fmt.Sprintf("%d %s ago", value, unit)
	}
	return fmt.Sprintf("%d %s", value, unit)
}
