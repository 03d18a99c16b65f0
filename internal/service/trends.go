package service

import "restboard/internal/model"

// ToTrendRows assembles one row per day from the four parallel date-keyed
// mappings, with daily_orders as the canonical key set. Row order is
// unspecified; callers that need chronological rows sort them. A missing
// payload degrades to an empty result, never an error.
func ToTrendRows(payload *model.TrendsPayload) []model.TrendRow {
	if payload == nil || len(payload.DailyOrders) == 0 {
		return nil
	}

	rows := make([]model.TrendRow, 0, len(payload.DailyOrders))
	for date, orders := range payload.DailyOrders {
		rows = append(rows, model.TrendRow{
			Date:          date,
			Orders:        orders,
			Revenue:       payload.DailyRevenue[date],
			AvgOrderValue: payload.AvgOrderValue[date],
			PeakHour:      payload.PeakHour[date],
		})
	}
	return rows
}
