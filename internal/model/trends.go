package model

// TrendsPayload is the order-trends query result: four parallel mappings
// keyed by ISO date. The backend guarantees they share one key set;
// daily_orders is treated as canonical.
type TrendsPayload struct {
	DailyOrders   map[string]int     `json:"daily_orders"`
	DailyRevenue  map[string]float64 `json:"daily_revenue"`
	AvgOrderValue map[string]float64 `json:"avg_order_value"`
	PeakHour      map[string]int     `json:"peak_hour"`
}

// TrendRow is one derived per-day summary. Rows are rebuilt from scratch on
// every trends fetch.
type TrendRow struct {
	Date          string  `json:"date"`
	Orders        int     `json:"orders"`
	Revenue       float64 `json:"revenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	PeakHour      int     `json:"peakHour"`
}
