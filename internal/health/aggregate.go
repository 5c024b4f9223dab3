// Package health computes per-project labor metrics and classifies each
// project's condition as good/warning/danger. Every function is pure: it
// reads the project records and policy passed to it and never touches
// shared state, so callers can run classifications for different projects
// concurrently.
package health

import (
	"github.com/sitelabor/backend/internal/model"
)

// SafeRatio returns num/den, or fallback when den is zero or negative.
// Every ratio in this package goes through here so "no baseline" degrades
// to a neutral value instead of NaN or a division panic.
func SafeRatio(num, den, fallback float64) float64 {
	if den <= 0 {
		return fallback
	}
	return num / den
}

// AverageProgress is the arithmetic mean of every recorded progress value
// across the project's entire history. Entries without a progress value are
// skipped, not counted as zero. Empty history yields 0.
func AverageProgress(p *model.Project) float64 {
	sum := 0.0
	count := 0
	for _, dateData := range p.DailyData {
		for _, e := range dateData {
			if e == nil || e.Progress == nil {
				continue
			}
			sum += *e.Progress
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// WorkforceDelta compares the most recent date's total headcount against
// the average of up to windowDays immediately preceding dates. A missing
// baseline (no prior dates, or a zero average) reads as "no change".
func WorkforceDelta(p *model.Project, windowDays int) (deltaRatio float64, todayTotal int, recentAvg float64) {
	if len(p.DailyData) == 0 {
		return 0.0, 0, 0.0
	}

	dates := p.SortedDates()
	today := dates[len(dates)-1]
	for _, e := range p.DailyData[today] {
		todayTotal += e.Total
	}

	prev := dates[:len(dates)-1]
	if windowDays > 0 && len(prev) > windowDays {
		prev = prev[len(prev)-windowDays:]
	}
	if len(prev) > 0 {
		sum := 0
		for _, d := range prev {
			for _, e := range p.DailyData[d] {
				sum += e.Total
			}
		}
		recentAvg = float64(sum) / float64(len(prev))
	}

	deltaRatio = SafeRatio(float64(todayTotal)-recentAvg, recentAvg, 0.0)
	return deltaRatio, todayTotal, recentAvg
}

// CumulativeCost sums contracted budgets and all-time labor cost over the
// project's active work types. The day-shift rate is the per-head cost
// basis for every shift here; only the reports view prices each shift
// separately. Entries for decommissioned work types are ignored.
func CumulativeCost(p *model.Project, rates map[string]model.LaborRate) (totalContract, totalLaborCost int, overrunRatio float64) {
	for _, wt := range p.WorkTypes {
		totalContract += p.Contracts[wt]

		cumulative := 0
		for _, dateData := range p.DailyData {
			if e, ok := dateData[wt]; ok {
				cumulative += e.Total
			}
		}
		totalLaborCost += cumulative * rates[wt].Day
	}

	overrunRatio = SafeRatio(float64(totalLaborCost-totalContract), float64(totalContract), 0.0)
	return totalContract, totalLaborCost, overrunRatio
}

// RollupRow is one work type's line in the per-project cost table.
type RollupRow struct {
	WorkType       string `json:"work_type"`
	Company        string `json:"company"`
	ContractAmount int    `json:"contract_amount"`
	TotalWorkers   int    `json:"total_workers"`
	LaborRate      int    `json:"labor_rate"`
	TotalLaborCost int    `json:"total_labor_cost"`
	Balance        int    `json:"balance"`
}

// WorkTypeRollup builds one row per active work type, in the project's
// work type order: cumulative headcount, labor cost at the day rate, and
// the remaining contract balance.
func WorkTypeRollup(p *model.Project, rates map[string]model.LaborRate) []RollupRow {
	rows := make([]RollupRow, 0, len(p.WorkTypes))
	for _, wt := range p.WorkTypes {
		totalWorkers := 0
		for _, dateData := range p.DailyData {
			if e, ok := dateData[wt]; ok {
				totalWorkers += e.Total
			}
		}

		rate := rates[wt].Day
		contract := p.Contracts[wt]
		cost := totalWorkers * rate

		rows = append(rows, RollupRow{
			WorkType:       wt,
			Company:        p.Companies[wt],
			ContractAmount: contract,
			TotalWorkers:   totalWorkers,
			LaborRate:      rate,
			TotalLaborCost: cost,
			Balance:        contract - cost,
		})
	}
	return rows
}
