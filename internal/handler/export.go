package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"restboard/internal/service"
)

// ExportHandler writes the current sorted view as an xlsx workbook: one sheet
// of restaurants plus, for each restaurant with loaded orders, their order
// rows on a second sheet.
func ExportHandler(ws *service.WorkingSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurants := ws.SortedView()

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				slog.Error("close workbook failed", "error", err)
			}
		}()

		sheet := f.GetSheetName(0)
		_ = f.SetSheetName(sheet, "Restaurants")
		sheet = "Restaurants"

		headers := []string{"ID", "Name", "Location", "Revenue"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(sheet, cell, h)
		}
		for i, rest := range restaurants {
			row := i + 2
			_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), rest.ID)
			_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rest.Name)
			_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), rest.Location)
			_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), rest.Revenue.Float())
		}

		ordersSheet := "Orders"
		if _, err := f.NewSheet(ordersSheet); err == nil {
			for i, h := range []string{"Restaurant", "Order ID", "Amount", "Order Time"} {
				cell, _ := excelize.CoordinatesToCellName(i+1, 1)
				_ = f.SetCellValue(ordersSheet, cell, h)
			}
			row := 2
			for _, rest := range restaurants {
				if rest.Orders == nil {
					continue
				}
				for _, order := range rest.Orders.Data {
					_ = f.SetCellValue(ordersSheet, fmt.Sprintf("A%d", row), rest.Name)
					_ = f.SetCellValue(ordersSheet, fmt.Sprintf("B%d", row), order.ID)
					_ = f.SetCellValue(ordersSheet, fmt.Sprintf("C%d", row), order.OrderAmount.Float())
					_ = f.SetCellValue(ordersSheet, fmt.Sprintf("D%d", row), order.OrderTime)
					row++
				}
			}
		}

		name := fmt.Sprintf("restaurants-%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+name)
		if err := f.Write(w); err != nil {
			slog.Error("write workbook failed", "error", err)
		}
	}
}
