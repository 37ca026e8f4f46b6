// Package holiday fetches public holidays and notifies when today is one.
package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public holidays API of date.nager.at.
const DefaultBaseURL = "https://date.nager.at"

// Holiday is one entry of the public holidays API response. Holidays are
// never persisted; they are re-fetched on every process start.
type Holiday struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Fixed       bool   `json:"fixed"`
	Global      bool   `json:"global"`
}

// Client is a read-only client for the public holidays API.
type Client struct {
	http *resty.Client
}

// NewClient creates a Client against baseURL with a bounded per-request
// timeout. The API needs no auth.
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2)

	return &Client{http: c}
}

// PublicHolidays returns the public holidays of the country for the given
// year. A non-2xx status is an error.
func (c *Client) PublicHolidays(ctx context.Context, year int, countryCode string) ([]Holiday, error) {
	var holidays []Holiday

	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&holidays).
		Get(fmt.Sprintf("/api/v3/PublicHolidays/%d/%s", year, countryCode))
	if err != nil {
		return nil, fmt.Errorf("fetch public holidays: %w", err)
	}

	if res.IsError() {
		return nil, fmt.Errorf("holiday API returned %s", res.Status())
	}

	return holidays, nil
}
