package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"restboard/internal/model"
	"restboard/internal/service"
)

func TestExportEndpointWritesWorkbook(t *testing.T) {
	stub := &stubBackend{
		listFn: func(ctx context.Context, params map[string]string) ([]model.Restaurant, error) {
			return []model.Restaurant{
				{ID: "r1", Name: "Alpha", Location: "Pune", Revenue: "900"},
				{ID: "r2", Name: "Beta", Location: "Delhi", Revenue: "100", Orders: &model.OrderPage{
					Data:        []model.Order{{ID: "o1", OrderAmount: "120", OrderTime: "2024-01-01T12:00:00Z"}},
					CurrentPage: 1,
					PerPage:     10,
					Total:       1,
				}},
			}, nil
		},
	}
	ws := service.NewWorkingSet(stub)
	if err := ws.LoadAll(context.Background(), nil); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	rec := httptest.NewRecorder()
	ExportHandler(ws)(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/export", nil))

	if got := rec.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(got, "attachment; filename=restaurants-") {
		t.Errorf("Content-Disposition = %q", got)
	}

	f, err := excelize.OpenReader(rec.Body)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Restaurants")
	if err != nil {
		t.Fatalf("GetRows(Restaurants): %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("restaurant rows = %d, want header + 2", len(rows))
	}
	if rows[0][1] != "Name" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "Alpha" || rows[2][1] != "Beta" {
		t.Errorf("restaurant names = %s, %s", rows[1][1], rows[2][1])
	}

	orderRows, err := f.GetRows("Orders")
	if err != nil {
		t.Fatalf("GetRows(Orders): %v", err)
	}
	if len(orderRows) != 2 {
		t.Fatalf("order rows = %d, want header + 1", len(orderRows))
	}
	if orderRows[1][0] != "Beta" || orderRows[1][1] != "o1" {
		t.Errorf("order row = %v", orderRows[1])
	}
}

func TestExportEndpointSortedView(t *testing.T) {
	stub := &stubBackend{
		listFn: func(ctx context.Context, params map[string]string) ([]model.Restaurant, error) {
			return []model.Restaurant{
				{ID: "r1", Name: "Alpha", Revenue: "900"},
				{ID: "r2", Name: "Beta", Revenue: "100"},
			}, nil
		},
	}
	ws := service.NewWorkingSet(stub)
	if err := ws.LoadAll(context.Background(), nil); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	ws.SetSort(model.SortByRevenue)

	rec := httptest.NewRecorder()
	ExportHandler(ws)(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/export", nil))

	f, err := excelize.OpenReader(rec.Body)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Restaurants")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if rows[1][1] != "Beta" || rows[2][1] != "Alpha" {
		t.Errorf("export ignored active sort: %s, %s", rows[1][1], rows[2][1])
	}
}
