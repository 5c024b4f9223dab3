package model

import (
	"sort"
	"time"
)

// Project statuses (lifecycle, independent of computed health).
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
)

// Project is a named unit of work with its active work types, contracted
// labor budgets, and the daily attendance history keyed by date then work
// type. Date keys use the "2006-01-02" format, so lexicographic order is
// chronological.
type Project struct {
	Name      string            `json:"name"`
	WorkTypes []string          `json:"work_types"`
	Contracts map[string]int    `json:"contracts"`
	Companies map[string]string `json:"companies,omitempty"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`

	// DailyData maps date → work type → entry. Entries for work types no
	// longer listed in WorkTypes may remain; aggregation ignores them.
	DailyData map[string]map[string]*WorkEntry `json:"daily_data,omitempty"`
}

// SortedDates returns every date key in chronological order.
func (p *Project) SortedDates() []string {
	dates := make([]string, 0, len(p.DailyData))
	for d := range p.DailyData {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// LatestDate returns the most recent date with any entry, or ok=false when
// the project has no daily data at all.
func (p *Project) LatestDate() (string, bool) {
	latest := ""
	for d := range p.DailyData {
		if d > latest {
			latest = d
		}
	}
	return latest, latest != ""
}

// HasWorkType reports whether wt is in the project's active work type list.
func (p *Project) HasWorkType(wt string) bool {
	for _, w := range p.WorkTypes {
		if w == wt {
			return true
		}
	}
	return false
}
