package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sitelabor/backend/internal/model"
)

func TestLaborRateHandler_List(t *testing.T) {
	rates := &mockLaborRateService{
		listFunc: func(context.Context) (map[string]model.LaborRate, error) {
			return map[string]model.LaborRate{
				"도장공사": {WorkType: "도장공사", Day: 120_000, Locked: true},
			}, nil
		},
	}
	h := NewLaborRateHandler(rates)

	req := httptest.NewRequest(http.MethodGet, "/api/labor-rates", nil)
	w := serve("GET /api/labor-rates", h.List, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got laborRateListResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if rate := got.Rates["도장공사"]; rate.Day != 120_000 || !rate.Locked {
		t.Errorf("unexpected rate: %+v", rate)
	}
}

func TestLaborRateHandler_BulkUpsert_ReportsSkipped(t *testing.T) {
	rates := &mockLaborRateService{
		bulkUpsertFunc: func(_ context.Context, in []model.LaborRate) ([]string, error) {
			if len(in) != 2 {
				t.Errorf("expected 2 rates, got %d", len(in))
			}
			return []string{"도장공사"}, nil
		},
	}
	h := NewLaborRateHandler(rates)

	body := `{"rates":[{"work_type":"도장공사","day":130000},{"work_type":"목공사","day":140000}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/labor-rates", strings.NewReader(body))
	w := serve("PUT /api/labor-rates", h.BulkUpsert, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got bulkUpsertResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got.Skipped) != 1 || got.Skipped[0] != "도장공사" {
		t.Errorf("expected 도장공사 skipped, got %v", got.Skipped)
	}
}

func TestLaborRateHandler_SetLocked(t *testing.T) {
	var gotWorkType string
	var gotLocked bool
	rates := &mockLaborRateService{
		setLockedFunc: func(_ context.Context, workType string, locked bool) error {
			gotWorkType = workType
			gotLocked = locked
			return nil
		},
	}
	h := NewLaborRateHandler(rates)

	req := httptest.NewRequest(http.MethodPatch, "/api/labor-rates/도장공사/lock", strings.NewReader(`{"locked":true}`))
	w := serve("PATCH /api/labor-rates/{workType}/lock", h.SetLocked, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotWorkType != "도장공사" || !gotLocked {
		t.Errorf("unexpected lock call: %q %v", gotWorkType, gotLocked)
	}
}
