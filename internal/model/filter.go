package model

// DateRange bounds a filter by order date, ISO dates, either side optional.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FilterCriteria holds the user-entered filter fields. An empty string means
// the field was left blank and places no constraint on the query.
type FilterCriteria struct {
	Restaurant string    `json:"restaurant"`
	DateRange  DateRange `json:"dateRange"`
	AmountMin  string    `json:"amountMin"`
	AmountMax  string    `json:"amountMax"`
	HourMin    string    `json:"hourMin"`
	HourMax    string    `json:"hourMax"`
}

// QueryParams maps the criteria onto backend query parameters. Only populated
// fields appear in the result; absence means "no constraint", never a default.
// Values are passed through as-is, the backend validates them.
func (f FilterCriteria) QueryParams() map[string]string {
	params := make(map[string]string)
	if f.Restaurant != "" {
		params["restaurant_id"] = f.Restaurant
	}
	if f.DateRange.Start != "" {
		params["start_date"] = f.DateRange.Start
	}
	if f.DateRange.End != "" {
		params["end_date"] = f.DateRange.End
	}
	if f.AmountMin != "" {
		params["amount_min"] = f.AmountMin
	}
	if f.AmountMax != "" {
		params["amount_max"] = f.AmountMax
	}
	if f.HourMin != "" {
		params["hour_min"] = f.HourMin
	}
	if f.HourMax != "" {
		params["hour_max"] = f.HourMax
	}
	return params
}

// SortKey names a sortable restaurant column.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByLocation SortKey = "location"
	SortByRevenue  SortKey = "orders_sum_order_amount"
)

// SortDirection represents sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState is the active column sort. A zero Key means the canonical
// backend order is kept.
type SortState struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}
