// Package stats computes the dashboard's derived statistics. The per-entity
// counts are page-scoped by design: they reduce only the currently loaded page
// of results, not the whole remote collection, because the server exposes no
// global aggregates. Callers must not widen them into cross-page counts.
package stats

import (
	"sort"
	"time"

	"github.com/fairsplit-admin/internal/models"
)

// signupWindow is the trailing window for "recent" counts.
const signupWindow = 7 * 24 * time.Hour

// VerifiedUsers counts the verified users on the page.
func VerifiedUsers(users []models.User) int {
	count := 0
	for i := range users {
		if users[i].IsVerified() {
			count++
		}
	}
	return count
}

// GoogleUsers counts users on the page with a linked Google account.
func GoogleUsers(users []models.User) int {
	count := 0
	for i := range users {
		if users[i].Google != nil && users[i].Google.GoogleID != "" {
			count++
		}
	}
	return count
}

// RecentSignups counts users on the page created within the trailing week.
func RecentSignups(users []models.User, now time.Time) int {
	cutoff := now.Add(-signupWindow)
	count := 0
	for i := range users {
		if users[i].CreatedAt.After(cutoff) {
			count++
		}
	}
	return count
}

// ActiveGroups counts the non-archived groups on the page.
func ActiveGroups(groups []models.Group) int {
	count := 0
	for i := range groups {
		if !groups[i].IsArchived {
			count++
		}
	}
	return count
}

// ArchivedGroups counts the archived groups on the page.
func ArchivedGroups(groups []models.Group) int {
	return len(groups) - ActiveGroups(groups)
}

// DistinctCategoryNames counts distinct category names on the page.
func DistinctCategoryNames(categories []models.Category) int {
	names := make(map[string]struct{}, len(categories))
	for i := range categories {
		names[categories[i].Name] = struct{}{}
	}
	return len(names)
}

// RecentCategories counts categories on the page created within the trailing week.
func RecentCategories(categories []models.Category, now time.Time) int {
	cutoff := now.Add(-signupWindow)
	count := 0
	for i := range categories {
		if categories[i].CreatedAt.After(cutoff) {
			count++
		}
	}
	return count
}

// CountByAction tallies activities by action kind.
func CountByAction(activities []models.Activity) map[string]int {
	counts := make(map[string]int)
	for i := range activities {
		counts[activities[i].Action]++
	}
	return counts
}

// DayCount is one point of the activity timeline.
type DayCount struct {
	Date  string // calendar day, YYYY-MM-DD
	Count int
}

// Timeline buckets activities by calendar day, sorted ascending, keeping only
// the trailing lastDays entries.
func Timeline(activities []models.Activity, lastDays int) []DayCount {
	byDay := make(map[string]int)
	for i := range activities {
		byDay[activities[i].CreatedAt.Format("2006-01-02")]++
	}

	days := make([]DayCount, 0, len(byDay))
	for day, count := range byDay {
		days = append(days, DayCount{Date: day, Count: count})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	if lastDays > 0 && len(days) > lastDays {
		days = days[len(days)-lastDays:]
	}
	return days
}
