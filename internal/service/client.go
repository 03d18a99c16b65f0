package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"restboard/internal/model"
	"restboard/internal/session"
)

// Backend is the analytics API surface the working set depends on.
type Backend interface {
	ListRestaurants(ctx context.Context, params map[string]string) ([]model.Restaurant, error)
	TopRevenue(ctx context.Context, startDate, endDate string) ([]model.Restaurant, error)
	FilteredOrders(ctx context.Context, params map[string]string) ([]model.Restaurant, error)
	OrderTrends(ctx context.Context, restaurantID, startDate, endDate string) (*model.TrendsPayload, error)
}

// Client talks to the analytics backend. Every request carries the bearer
// credential from the session store when one is set; a missing credential is
// left for the backend to reject.
type Client struct {
	baseURL string
	client  *http.Client
	session *session.Store
}

func NewClient(baseURL string, sess *session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		session: sess,
	}
}

func (c *Client) ListRestaurants(ctx context.Context, params map[string]string) ([]model.Restaurant, error) {
	body, err := c.get(ctx, "/restaurants", params)
	if err != nil {
		return nil, err
	}

	var res struct {
		Data []model.Restaurant `json:"data"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode restaurants: %w", err)
	}
	return res.Data, nil
}

func (c *Client) TopRevenue(ctx context.Context, startDate, endDate string) ([]model.Restaurant, error) {
	body, err := c.get(ctx, "/restaurants/top-revenue", map[string]string{
		"start_date": startDate,
		"end_date":   endDate,
	})
	if err != nil {
		return nil, err
	}

	var res []model.Restaurant
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode top revenue: %w", err)
	}
	return res, nil
}

func (c *Client) FilteredOrders(ctx context.Context, params map[string]string) ([]model.Restaurant, error) {
	body, err := c.get(ctx, "/restaurants/orders", params)
	if err != nil {
		return nil, err
	}
	return normalizeRestaurants(body)
}

func (c *Client) OrderTrends(ctx context.Context, restaurantID, startDate, endDate string) (*model.TrendsPayload, error) {
	body, err := c.get(ctx, "/restaurants/order/trends", map[string]string{
		"restaurant_id": restaurantID,
		"start_date":    startDate,
		"end_date":      endDate,
	})
	if err != nil {
		return nil, err
	}

	var payload model.TrendsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode trends: %w", err)
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// normalizeRestaurants absorbs the backend's loose contract for the filtered
// orders query, which answers with either a single restaurant object or an
// array of them. Everything past this point works with a slice.
func normalizeRestaurants(body []byte) ([]model.Restaurant, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var res []model.Restaurant
		if err := json.Unmarshal(trimmed, &res); err != nil {
			return nil, fmt.Errorf("decode restaurants: %w", err)
		}
		return res, nil
	case '{':
		var r model.Restaurant
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return nil, fmt.Errorf("decode restaurant: %w", err)
		}
		if r.ID == "" {
			return nil, nil
		}
		return []model.Restaurant{r}, nil
	default:
		return nil, fmt.Errorf("unexpected response shape: %.40s", string(trimmed))
	}
}
