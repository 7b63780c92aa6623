package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// RateProviderClient fetches the latest exchange rates from a fixed endpoint
// returning a JSON body with a "rates" field mapping currency code to rate.
type RateProviderClient struct {
	http     *http.Client
	endpoint string
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (c *RateProviderClient) FetchRates(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rates request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute rates request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d from rate provider: %s", resp.StatusCode, resp.Status)
	}

	var body ratesResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rate provider response: %w", err)
	}

	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("rate provider response contains no rates")
	}

	return body.Rates, nil
}

func NewRateProviderClient(httpClient *http.Client, endpoint string) *RateProviderClient {
	return &RateProviderClient{http: httpClient, endpoint: endpoint}
}
