package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// PostcodeResult is a single record from the postcodes.io API.
type PostcodeResult struct {
	Postcode      string  `json:"postcode"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	AdminWard     string  `json:"admin_ward"`
	AdminDistrict string  `json:"admin_district"`
}

// Client is a thin HTTP client for the postcodes.io API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a postcodes.io client. baseURL is overridable for tests.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Lookup fetches a single postcode record. A 404 from the API is reported
// as an error like any other non-200 status; callers decide how to degrade.
func (c *Client) Lookup(ctx context.Context, code string) (*PostcodeResult, error) {
	endpoint := fmt.Sprintf("%s/postcodes/%s", c.baseURL, url.PathEscape(code))

	var payload struct {
		Status int             `json:"status"`
		Result *PostcodeResult `json:"result"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if payload.Status != http.StatusOK || payload.Result == nil {
		return nil, fmt.Errorf("postcode %q not found", code)
	}
	return payload.Result, nil
}

// Autocomplete returns postcode suggestions for a partial postcode.
func (c *Client) Autocomplete(ctx context.Context, partial string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/postcodes/%s/autocomplete", c.baseURL, url.PathEscape(partial))

	var payload struct {
		Result []string `json:"result"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Result, nil
}

// Search runs a free-text postcode query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]PostcodeResult, error) {
	endpoint := fmt.Sprintf("%s/postcodes?q=%s&limit=%d", c.baseURL, url.QueryEscape(query), limit)

	var payload struct {
		Result []PostcodeResult `json:"result"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Result, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("postcode lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode postcode lookup response: %w", err)
	}
	return nil
}
