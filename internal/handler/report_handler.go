package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/sitelabor/backend/internal/health"
	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/service"
)

// ReportHandler serves the admin report view and the raw-entry CSV export.
type ReportHandler struct {
	health service.HealthService
	users  service.UserService
	rates  service.LaborRateService
}

func NewReportHandler(health service.HealthService, users service.UserService, rates service.LaborRateService) *ReportHandler {
	return &ReportHandler{health: health, users: users, rates: rates}
}

type reportResponse struct {
	TotalProjects   int                    `json:"total_projects"`
	TotalUsers      int                    `json:"total_users"`
	TotalWorkTypes  int                    `json:"total_work_types"`
	TotalWorkers    int                    `json:"total_workers"`
	TotalCost       int                    `json:"total_cost"`
	ProjectsSummary []health.ProjectReport `json:"projects_summary"`
}

func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	summary, err := h.health.Report(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	rates, err := h.rates.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	totalUsers := 0
	for _, u := range users {
		if u.Role == model.RoleUser {
			totalUsers++
		}
	}

	resp := reportResponse{
		TotalProjects:   summary.TotalProjects,
		TotalUsers:      totalUsers,
		TotalWorkTypes:  len(rates),
		TotalWorkers:    summary.TotalWorkers,
		TotalCost:       summary.TotalCost,
		ProjectsSummary: summary.Projects,
	}
	if resp.ProjectsSummary == nil {
		resp.ProjectsSummary = []health.ProjectReport{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// csvHeader matches the spreadsheet layout site managers already use.
var csvHeader = []string{"프로젝트", "날짜", "공종", "주간", "야간", "심야", "계", "공정율"}

// ExportCSV streams every recorded work entry as UTF-8 CSV. The BOM is
// required for the Korean headers to open correctly in Excel.
func (h *ReportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.health.ExportRows(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("labor_report_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("\ufeff")); err != nil {
		return
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return
	}
	for _, row := range rows {
		record := []string{
			row.Project,
			row.Date,
			row.WorkType,
			fmt.Sprintf("%d", row.Day),
			fmt.Sprintf("%d", row.Night),
			fmt.Sprintf("%d", row.Midnight),
			fmt.Sprintf("%d", row.Total),
			fmt.Sprintf("%.1f", row.Progress),
		}
		if err := cw.Write(record); err != nil {
			return
		}
	}
	cw.Flush()
}
