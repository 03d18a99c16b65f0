package model

import (
	"encoding/json"
	"strconv"
)

// Amount is a decimal value that the backend serializes either as a JSON
// number or as a decimal string, depending on the query that produced it.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// Float returns the numeric value, 0 for empty or malformed amounts.
func (a Amount) Float() float64 {
	f, _ := strconv.ParseFloat(string(a), 64)
	return f
}

type Restaurant struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Location string     `json:"location"`
	Revenue  Amount     `json:"orders_sum_order_amount"`
	Orders   *OrderPage `json:"orders,omitempty"`
}

type Order struct {
	ID          string `json:"id"`
	OrderAmount Amount `json:"order_amount"`
	OrderTime   string `json:"order_time"`
}

// OrderPage is one backend pagination window over a restaurant's orders.
// After merges, Data holds the concatenation of every page fetched so far
// and CurrentPage points at the last page appended.
type OrderPage struct {
	Data        []Order `json:"data"`
	CurrentPage int     `json:"current_page"`
	PerPage     int     `json:"per_page"`
	Total       int     `json:"total"`
}

// HasMore reports whether the backend holds pages beyond the ones loaded.
func (p *OrderPage) HasMore() bool {
	if p == nil {
		return false
	}
	return p.CurrentPage*p.PerPage < p.Total
}
