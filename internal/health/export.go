package health

import (
	"sort"

	"github.com/sitelabor/backend/internal/model"
)

// ExportRow is one (project, date, work type) triple flattened for CSV
// export. Field order matches the exported columns.
type ExportRow struct {
	Project  string
	Date     string
	WorkType string
	Day      int
	Night    int
	Midnight int
	Total    int
	Progress float64
}

// ExportRows flattens every daily entry across all projects, sorted by
// project name, then date, then work type, so exports are reproducible.
// Decommissioned work types are included: this is a raw dump of the entered
// data, not a re-aggregation.
func ExportRows(projects []*model.Project) []ExportRow {
	sorted := make([]*model.Project, len(projects))
	copy(sorted, projects)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var rows []ExportRow
	for _, p := range sorted {
		for _, date := range p.SortedDates() {
			dateData := p.DailyData[date]
			workTypes := make([]string, 0, len(dateData))
			for wt := range dateData {
				workTypes = append(workTypes, wt)
			}
			sort.Strings(workTypes)

			for _, wt := range workTypes {
				e := dateData[wt]
				progress := 0.0
				if e.Progress != nil {
					progress = *e.Progress
				}
				rows = append(rows, ExportRow{
					Project:  p.Name,
					Date:     date,
					WorkType: wt,
					Day:      e.Day,
					Night:    e.Night,
					Midnight: e.Midnight,
					Total:    e.Total,
					Progress: progress,
				})
			}
		}
	}
	return rows
}
