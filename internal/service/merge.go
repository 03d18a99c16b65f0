package service

import "restboard/internal/model"

// MergePage appends a freshly fetched page of orders onto the pages already
// loaded for a restaurant. The caller requests pages sequentially, so
// incoming is expected to be the page directly after existing; under that
// precondition no dedup pass is needed. The server stays authoritative for
// the total, which can move between page fetches.
func MergePage(existing, incoming model.OrderPage) model.OrderPage {
	data := make([]model.Order, 0, len(existing.Data)+len(incoming.Data))
	data = append(data, existing.Data...)
	data = append(data, incoming.Data...)

	return model.OrderPage{
		Data:        data,
		CurrentPage: incoming.CurrentPage,
		PerPage:     existing.PerPage,
		Total:       incoming.Total,
	}
}
