package health

import (
	"math"

	"github.com/sitelabor/backend/internal/model"
)

// NoDataDate is the sentinel shown when a project has no entries yet.
const NoDataDate = "데이터 없음"

// DashboardRow is one project's line on the admin dashboard.
type DashboardRow struct {
	ProjectName       string             `json:"project_name"`
	RecentDate        string             `json:"recent_date"`
	TodayWorkers      int                `json:"today_workers"`
	CumulativeWorkers int                `json:"cumulative_workers"`
	AvgProgress       float64            `json:"avg_progress"`
	WorkCount         int                `json:"work_count"`
	Status            string             `json:"status"`
	StatusColor       string             `json:"status_color"`
	Health            model.HealthResult `json:"health_meta"`
}

// Dashboard classifies every project and assembles the summary list the
// dashboard view renders. Headcounts only consider active work types.
func Dashboard(projects []*model.Project, rates map[string]model.LaborRate, policy model.HealthPolicy, c Classifier) ([]DashboardRow, error) {
	rows := make([]DashboardRow, 0, len(projects))
	for _, p := range projects {
		recentDate, hasData := p.LatestDate()

		todayWorkers := 0
		cumulativeWorkers := 0
		for _, wt := range p.WorkTypes {
			if hasData {
				if e, ok := p.DailyData[recentDate][wt]; ok {
					todayWorkers += e.Total
				}
			}
			for _, dateData := range p.DailyData {
				if e, ok := dateData[wt]; ok {
					cumulativeWorkers += e.Total
				}
			}
		}

		result, err := c.Classify(p, rates, policy)
		if err != nil {
			return nil, err
		}

		if !hasData {
			recentDate = NoDataDate
		}
		rows = append(rows, DashboardRow{
			ProjectName:       p.Name,
			RecentDate:        recentDate,
			TodayWorkers:      todayWorkers,
			CumulativeWorkers: cumulativeWorkers,
			AvgProgress:       result.AvgProgress,
			WorkCount:         len(p.WorkTypes),
			Status:            result.Status,
			StatusColor:       result.StatusColor,
			Health:            result,
		})
	}
	return rows, nil
}

// ProjectReport is one project's line in the cross-project report.
type ProjectReport struct {
	Name          string  `json:"name"`
	WorkTypeCount int     `json:"work_types_count"`
	TotalWorkers  int     `json:"total_workers"`
	TotalCost     int     `json:"total_cost"`
	WorkingDays   int     `json:"working_days"`
	AvgProgress   float64 `json:"avg_progress"`
	Status        string  `json:"status"`
}

// ReportSummary is the reports-view aggregate across every project.
type ReportSummary struct {
	TotalProjects int             `json:"total_projects"`
	TotalCost     int             `json:"total_cost"`
	TotalWorkers  int             `json:"total_workers"`
	Projects      []ProjectReport `json:"projects_summary"`
}

// Report builds the reports-view rollup. Unlike the cost signal, report
// totals price each shift with its own rate; work types without a rate
// contribute headcount but no cost.
func Report(projects []*model.Project, rates map[string]model.LaborRate, policy model.HealthPolicy, c Classifier) (ReportSummary, error) {
	summary := ReportSummary{TotalProjects: len(projects)}
	for _, p := range projects {
		workers := 0
		cost := 0
		for _, dateData := range p.DailyData {
			for wt, e := range dateData {
				workers += e.Day + e.Night + e.Midnight
				if r, ok := rates[wt]; ok {
					cost += e.Day*r.Day + e.Night*r.Night + e.Midnight*r.Midnight
				}
			}
		}

		result, err := c.Classify(p, rates, policy)
		if err != nil {
			return ReportSummary{}, err
		}

		summary.Projects = append(summary.Projects, ProjectReport{
			Name:          p.Name,
			WorkTypeCount: len(p.WorkTypes),
			TotalWorkers:  workers,
			TotalCost:     cost,
			WorkingDays:   len(p.DailyData),
			AvgProgress:   result.AvgProgress,
			Status:        result.Status,
		})
		summary.TotalCost += cost
		summary.TotalWorkers += workers
	}
	return summary, nil
}

// DailySummaryRow is one work type's line in the per-date field view:
// today's shift counts next to cumulative counts up to that date.
type DailySummaryRow struct {
	WorkType           string  `json:"work_type"`
	Today              int     `json:"today"`
	TodayDay           int     `json:"today_day"`
	TodayNight         int     `json:"today_night"`
	TodayMidnight      int     `json:"today_midnight"`
	Cumulative         int     `json:"cumulative"`
	CumulativeDay      int     `json:"cumulative_day"`
	CumulativeNight    int     `json:"cumulative_night"`
	CumulativeMidnight int     `json:"cumulative_midnight"`
	TodayProgress      float64 `json:"today_progress"`
	CumulativeProgress float64 `json:"cumulative_progress"`
}

// DailySummary builds the field view for one date. Cumulative progress here
// reads the day's progress value as an increment on top of the highest
// prior value, since field crews enter daily gains on this screen. The
// health engine does not share this reading; it averages progress values
// as absolutes (see AverageProgress).
func DailySummary(p *model.Project, date string) []DailySummaryRow {
	rows := make([]DailySummaryRow, 0, len(p.WorkTypes))
	for _, wt := range p.WorkTypes {
		var row DailySummaryRow
		row.WorkType = wt

		if e, ok := p.DailyData[date][wt]; ok {
			row.Today = e.Total
			row.TodayDay = e.Day
			row.TodayNight = e.Night
			row.TodayMidnight = e.Midnight
			if e.Progress != nil {
				row.TodayProgress = *e.Progress
			}
		}

		previousMax := 0.0
		for d, dateData := range p.DailyData {
			e, ok := dateData[wt]
			if !ok || d > date {
				continue
			}
			row.Cumulative += e.Total
			row.CumulativeDay += e.Day
			row.CumulativeNight += e.Night
			row.CumulativeMidnight += e.Midnight
			if d < date && e.Progress != nil {
				previousMax = math.Max(previousMax, *e.Progress)
			}
		}
		row.CumulativeProgress = previousMax + row.TodayProgress

		rows = append(rows, row)
	}
	return rows
}
